package pagination_test

import (
	"testing"

	"github.com/AbdulAleem24/STT-Library-management-system-sub002/internal/pagination"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		page  string
		limit string
		want  pagination.Directive
	}{
		{"both absent", "", "", pagination.Directive{Page: 1, Limit: 20, Skip: 0}},
		{"non-numeric page", "abc", "10", pagination.Directive{Page: 1, Limit: 10, Skip: 0}},
		{"non-numeric limit", "2", "lots", pagination.Directive{Page: 2, Limit: 20, Skip: 20}},
		{"zero page, oversized limit", "0", "500", pagination.Directive{Page: 1, Limit: 100, Skip: 0}},
		{"negative page", "-3", "10", pagination.Directive{Page: 1, Limit: 10, Skip: 0}},
		{"negative limit", "2", "-1", pagination.Directive{Page: 2, Limit: 20, Skip: 20}},
		{"plain valid", "3", "10", pagination.Directive{Page: 3, Limit: 10, Skip: 20}},
		{"limit at cap", "1", "100", pagination.Directive{Page: 1, Limit: 100, Skip: 0}},
		{"limit just over cap", "2", "101", pagination.Directive{Page: 2, Limit: 100, Skip: 100}},
		{"float-ish input falls back", "1.5", "2.5", pagination.Directive{Page: 1, Limit: 20, Skip: 0}},
		{"large page", "1000", "100", pagination.Directive{Page: 1000, Limit: 100, Skip: 99900}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := pagination.Normalize(tc.page, tc.limit)
			if got != tc.want {
				t.Errorf("Normalize(%q, %q) = %+v; want %+v", tc.page, tc.limit, got, tc.want)
			}
		})
	}
}

func TestClamp_SkipInvariant(t *testing.T) {
	// For any valid pair, Skip must be exactly (page-1)*limit.
	for page := 1; page <= 50; page++ {
		for _, limit := range []int{1, 7, 20, 99, 100} {
			d := pagination.Clamp(page, limit)
			if d.Skip != (page-1)*limit {
				t.Fatalf("Clamp(%d, %d).Skip = %d; want %d", page, limit, d.Skip, (page-1)*limit)
			}
		}
	}
}

func TestClamp_Idempotent(t *testing.T) {
	inputs := [][2]int{{0, 0}, {-5, 500}, {3, 10}, {1, 100}, {7, 101}}
	for _, in := range inputs {
		once := pagination.Clamp(in[0], in[1])
		twice := pagination.Clamp(once.Page, once.Limit)
		if once != twice {
			t.Errorf("Clamp not idempotent for %v: first %+v, second %+v", in, once, twice)
		}
	}
}

func TestNewMeta(t *testing.T) {
	cases := []struct {
		name                string
		total, page, limit  int
		wantPages, wantLimit int
	}{
		{"empty result still one page", 0, 1, 20, 1, 20},
		{"exact multiple", 100, 1, 20, 5, 20},
		{"one over the multiple", 101, 1, 20, 6, 20},
		{"less than one page", 7, 1, 20, 1, 20},
		{"limit one", 7, 1, 1, 7, 1},
		{"zero limit guarded", 5, 1, 0, 5, 1},
		{"negative limit guarded", 0, 1, -3, 1, 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := pagination.NewMeta(tc.total, tc.page, tc.limit)
			if m.TotalPages != tc.wantPages {
				t.Errorf("TotalPages = %d; want %d", m.TotalPages, tc.wantPages)
			}
			if m.Limit != tc.wantLimit {
				t.Errorf("Limit = %d; want %d", m.Limit, tc.wantLimit)
			}
			if m.Total != tc.total || m.Page != tc.page {
				t.Errorf("Total/Page passthrough broken: %+v", m)
			}
		})
	}
}

func TestNewMeta_CeilProperty(t *testing.T) {
	for total := 0; total <= 250; total++ {
		for _, limit := range []int{1, 3, 20, 100} {
			m := pagination.NewMeta(total, 1, limit)
			want := (total + limit - 1) / limit
			if want < 1 {
				want = 1
			}
			if m.TotalPages != want {
				t.Fatalf("NewMeta(%d, 1, %d).TotalPages = %d; want %d", total, limit, m.TotalPages, want)
			}
		}
	}
}
