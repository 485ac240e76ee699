package dto_test

import (
	"net/http"
	"net/url"
	"reflect"
	"resort/shared/constant"
	"resort/shared/dto"
	"resort/shared/model"
	"resort/shared/timezone"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "desk@resort.test",
		ModifiedBy: "admin@resort.test",
	})

	if want := timezone.Format(createdAt, constant.DateFormat); metadata.CreatedAt != want {
		t.Errorf("expected CreatedAt to be %s, got %s", want, metadata.CreatedAt)
	}

	if want := timezone.Format(modifiedAt, constant.DateFormat); metadata.ModifiedAt != want {
		t.Errorf("expected ModifiedAt to be %s, got %s", want, metadata.ModifiedAt)
	}

	if metadata.ModifiedBy != "admin@resort.test" {
		t.Errorf("expected ModifiedBy to be admin@resort.test, got %s", metadata.ModifiedBy)
	}

	untouched := &dto.Metadata{}
	untouched.FromModel(model.Metadata{CreatedAt: createdAt, CreatedBy: "system", ModifiedBy: "system"})

	if untouched.ModifiedAt != "" || untouched.ModifiedBy != "" {
		t.Errorf("expected no modification fields, got %q by %q", untouched.ModifiedAt, untouched.ModifiedBy)
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with zero page parameter",
			queryParams: map[string]string{
				"page": "0",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid limit parameter",
			queryParams: map[string]string{
				"limit": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "email",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "email",
				SortDir: "", // Empty when not provided
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a URL with query parameters
			baseURL := "http://example.com/test"
			u, err := url.Parse(baseURL)
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			// Add query parameters
			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			// Create HTTP request
			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			// Test the method
			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			// Verify results
			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestQueryParams_LimitIsCapped(t *testing.T) {
	req, _ := http.NewRequest(http.MethodGet, "/v1/guests?limit=5000&page=3", nil)

	queryParams := dto.QueryParams{}
	queryParams.FromRequest(req, true)

	if queryParams.Limit != constant.MaxValueLimit {
		t.Errorf("expected Limit to be capped at %d, got %d", constant.MaxValueLimit, queryParams.Limit)
	}

	if queryParams.Offset() != 2*constant.MaxValueLimit {
		t.Errorf("expected Offset to be %d, got %d", 2*constant.MaxValueLimit, queryParams.Offset())
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equality with table prefix",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "confirmed", Table: "reservations"},
			wantWhere: "reservations.status = :status",
			wantArgs:  map[string]any{"status": "confirmed"},
		},
		{
			name:      "strict less than uses arg name",
			filter:    dto.Filter{ArgName: "check_in_before", Field: "check_in", Operator: dto.FilterOperatorLess, Value: "2025-06-05"},
			wantWhere: "check_in < :check_in_before",
			wantArgs:  map[string]any{"check_in_before": "2025-06-05"},
		},
		{
			name:      "like wraps the value",
			filter:    dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "kayak"},
			wantWhere: `LOWER(name) LIKE LOWER(:name) ESCAPE '\'`,
			wantArgs:  map[string]any{"name": "%kayak%"},
		},
		{
			name:      "like matches wildcards literally",
			filter:    dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: `50%_off\`},
			wantWhere: `LOWER(name) LIKE LOWER(:name) ESCAPE '\'`,
			wantArgs:  map[string]any{"name": `%50\%\_off\\%`},
		},
		{
			name:      "in expands slices",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{"confirmed", "checked-in"}},
			wantWhere: "status IN (:status_0, :status_1)",
			wantArgs:  map[string]any{"status_0": "confirmed", "status_1": "checked-in"},
		},
		{
			name:      "not in with an empty slice matches everything",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorNotIn, Value: []string{}},
			wantWhere: "TRUE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in with an empty slice matches nothing",
			filter:    dto.Filter{Field: "status", Operator: dto.FilterOperatorIn, Value: []string{}},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "null check takes no args",
			filter:    dto.Filter{Field: "last_restocked", Operator: dto.FilterOperatorIsNull},
			wantWhere: "last_restocked IS NULL",
			wantArgs:  map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if !reflect.DeepEqual(args, tt.wantArgs) {
				t.Errorf("expected args %v, got %v", tt.wantArgs, args)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	t.Run("empty nested groups are skipped", func(t *testing.T) {
		group := dto.FilterGroup{
			Operator: dto.FilterGroupOperatorAnd,
			Filters: []any{
				dto.FilterGroup{Operator: dto.FilterGroupOperatorOr},
				dto.Filter{Field: "id", Operator: dto.FilterOperatorEq, Value: "room-1"},
			},
		}

		where, _ := group.GetWhereClause()
		if where != "(id = :id)" {
			t.Errorf("expected (id = :id), got %q", where)
		}

		if group.Empty() {
			t.Error("expected group with a filter not to be empty")
		}
	})

	t.Run("overlap filter renders a half-open window", func(t *testing.T) {
		from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)

		group := dto.OverlapFilter("reservations", "check_in", "check_out", from, to)

		where, args := group.GetWhereClause()

		want := "(reservations.check_in < :check_in_before AND reservations.check_out > :check_out_after)"
		if where != want {
			t.Errorf("expected %q, got %q", want, where)
		}

		if args["check_in_before"] != to || args["check_out_after"] != from {
			t.Errorf("unexpected args %v", args)
		}
	})

	t.Run("no filters renders nothing", func(t *testing.T) {
		group := dto.FilterGroup{Operator: dto.FilterGroupOperatorAnd}

		if !group.Empty() {
			t.Error("expected empty group")
		}
	})
}
