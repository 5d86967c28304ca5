package counters

import (
	"fmt"

	"github.com/and161185/counters-admin/internal/errs"
	"github.com/and161185/counters-admin/model"
)

// PageRequest selects a window of a listing.
type PageRequest struct {
	Offset   int // Index of the first item, zero based.
	PageSize int // Maximum number of items on the page.
}

// NewPageRequest builds a request for the zero-based page number of the given size.
func NewPageRequest(page, size int) *PageRequest {
	return &PageRequest{Offset: page * size, PageSize: size}
}

// Validate checks the request window. A nil request is valid and selects everything.
func (r *PageRequest) Validate() error {
	if r == nil {
		return nil
	}
	if r.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d: %w", r.PageSize, errs.ErrInvalidArgument)
	}
	if r.Offset < 0 {
		return fmt.Errorf("offset must not be negative, got %d: %w", r.Offset, errs.ErrInvalidArgument)
	}
	return nil
}

// Page is a window of a sequence together with metadata describing it.
type Page[T any] struct {
	Items    []T
	Metadata model.PageMetadata
}

// Window cuts the page selected by req out of items.
//
// The returned items are items[offset:min(offset+size, len(items))], or none
// when the offset is past the end. Metadata size and number describe the
// returned slice; the total is len(items).
func Window[T any](items []T, req *PageRequest) (Page[T], error) {
	if err := req.Validate(); err != nil {
		return Page[T]{}, err
	}

	total := len(items)
	if req == nil {
		return Page[T]{
			Items:    items,
			Metadata: model.PageMetadata{Size: total, Number: 0, TotalElements: total},
		}, nil
	}

	var content []T
	if req.Offset < total {
		end := min(req.Offset+req.PageSize, total)
		content = items[req.Offset:end]
	} else {
		content = []T{}
	}

	return Page[T]{
		Items: content,
		Metadata: model.PageMetadata{
			Size:          len(content),
			Number:        req.Offset / req.PageSize,
			TotalElements: total,
		},
	}, nil
}
