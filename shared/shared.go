package shared

import (
	"context"
	"fmt"
	"math"
	"reflect"
	"resort/shared/cache"
	"resort/shared/constant"
	"resort/shared/dto"
	"resort/shared/timezone"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func ConvertStringToInt(value string) (int, error) {
	res, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, fmt.Errorf("failed to convert %q to int: %w", value, err)
	}

	return res, nil
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero db-tagged fields of a struct into a map of updated fields.
func TransformFields(data interface{}, username string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = username

	return updatedFields
}

func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
				Table:    table,
			},
		},
	}
}

// FilterStatusIn matches rows whose status column is one of the given values.
func FilterStatusIn[S ~string](field, table string, statuses ...S) dto.Filter {
	values := make([]string, len(statuses))
	for i, status := range statuses {
		values[i] = string(status)
	}

	return dto.Filter{
		ArgName:  table + "_" + field,
		Field:    field,
		Value:    values,
		Operator: dto.FilterOperatorIn,
		Table:    table,
	}
}

// SearchFilter builds an OR group of case-insensitive substring matches over the given fields.
func SearchFilter(term, table string, fields ...string) dto.FilterGroup {
	group := dto.FilterGroup{Operator: dto.FilterGroupOperatorOr}

	for _, field := range fields {
		group.Filters = append(group.Filters, dto.Filter{
			ArgName:  "search_" + field,
			Field:    field,
			Value:    term,
			Operator: dto.FilterOperatorLike,
			Table:    table,
		})
	}

	return group
}

// WithDefaultSort applies the natural ordering of an entity when the caller asked for none.
func WithDefaultSort(params dto.QueryParams, sortBy string, allowed ...string) dto.QueryParams {
	if params.SortBy == constant.Empty || !slices.Contains(allowed, params.SortBy) {
		params.SortBy = sortBy
	}

	if params.SortDir == constant.Empty {
		params.SortDir = constant.DefaultValueSortDir
	}

	return params
}

func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

func BuildCacheKeyWithQuery(prefix string, params dto.QueryParams, filter dto.FilterGroup) string {
	where, args := filter.GetWhereClause()

	return BuildCacheKey(prefix,
		strconv.Itoa(params.Page),
		strconv.Itoa(params.Limit),
		params.SortBy,
		params.SortDir,
		where,
		fmt.Sprintf("%v", args),
	)
}

// InvalidateCaches clears every key stored under prefix.
func InvalidateCaches(ctx context.Context, redisCache cache.RedisCache, prefix string) {
	if err := redisCache.Clear(ctx, prefix+cacheKeySeparator+constant.Asterix); err != nil {
		log.Error().Err(err).Str("prefix", prefix).Msg("failed to invalidate caches")
	}
}

// RoundCurrency rounds an amount to cents.
func RoundCurrency(amount float64) float64 {
	return math.Round(amount*constant.CurrencyPrecision) / constant.CurrencyPrecision
}

// DateOnly truncates a timestamp to its calendar date at midnight UTC.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from start to end. It is negative when end precedes start.
func DaysBetween(start, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)).Hours() / constant.HoursPerDay)
}

// ParseDate parses a YYYY-MM-DD string into a calendar date.
func ParseDate(value string) (time.Time, error) {
	date, err := time.Parse(constant.DateOnlyFormat, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}

	return date, nil
}

// StatusFields is the update map of a status transition.
func StatusFields[S ~string](field string, status S, username string) map[string]any {
	return map[string]any{
		field:                    status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: username,
	}
}
