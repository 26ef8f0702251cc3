package models

import (
	"errors"
	"testing"

	"qanda-service/internal/common"
)

func TestParsePaginationEmpty(t *testing.T) {
	p, err := ParsePagination(map[string]string{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Limit != nil || p.Offset != 0 {
		t.Errorf("expected unbounded default, got %+v", p)
	}
}

func TestParsePaginationLimitAndOffset(t *testing.T) {
	p, err := ParsePagination(map[string]string{"limit": "2", "offset": "1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Limit == nil || *p.Limit != 2 || p.Offset != 1 {
		t.Errorf("unexpected pagination: %+v", p)
	}
}

func TestParsePaginationOffsetOnly(t *testing.T) {
	p, err := ParsePagination(map[string]string{"offset": "7"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Limit != nil || p.Offset != 7 {
		t.Errorf("unexpected pagination: %+v", p)
	}
}

func TestParsePaginationLimitWithoutOffset(t *testing.T) {
	_, err := ParsePagination(map[string]string{"limit": "5"})
	if !errors.Is(err, common.ErrMissingParameters) {
		t.Fatalf("want ErrMissingParameters, got %v", err)
	}
}

func TestParsePaginationMalformed(t *testing.T) {
	cases := []map[string]string{
		{"limit": "abc", "offset": "0"},
		{"limit": "2", "offset": "xyz"},
		{"limit": "0", "offset": "0"},
		{"limit": "-3", "offset": "0"},
		{"offset": "-1"},
	}
	for _, params := range cases {
		if _, err := ParsePagination(params); !errors.Is(err, common.ErrParse) {
			t.Errorf("params %v: want ErrParse, got %v", params, err)
		}
	}
}
