package model

import (
	"fmt"
	"strings"
	"time"

	"arena/shared/constant"
	gDto "arena/shared/dto"
	"arena/shared/failure"
)

// ListQuery is the raw filter input of the booking list endpoint.
type ListQuery struct {
	Query   string
	Status  string
	Date    string
	FieldID string
	Today   bool
}

// BuildListFilter turns the list query into the repository filter group.
// Free text becomes an OR of case-insensitive LIKE matches over booking id,
// customer name and email, field name, and venue name; the remaining inputs
// are exact AND restrictions.
func BuildListFilter(req ListQuery) (gDto.FilterGroup, error) {
	filters := []any{}

	if query := strings.TrimSpace(req.Query); query != "" {
		filters = append(filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{ArgName: "q_booking_id", Field: FieldID, Operator: gDto.FilterOperatorLike, Value: query, Table: TableName},
				gDto.Filter{ArgName: "q_customer_name", Field: "full_name", Operator: gDto.FilterOperatorLike, Value: query, Table: "users"},
				gDto.Filter{ArgName: "q_customer_email", Field: "email", Operator: gDto.FilterOperatorLike, Value: query, Table: "users"},
				gDto.Filter{ArgName: "q_field_name", Field: "name", Operator: gDto.FilterOperatorLike, Value: query, Table: "fields"},
				gDto.Filter{ArgName: "q_venue_name", Field: "name", Operator: gDto.FilterOperatorLike, Value: query, Table: "venues"},
			},
		})
	}

	if req.Status != "" {
		if !Status(req.Status).IsValid() {
			return gDto.FilterGroup{}, failure.BadRequestFromString("invalid status filter") //nolint:wrapcheck
		}

		filters = append(filters, gDto.Filter{
			Field:    FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    req.Status,
			Table:    TableName,
		})
	}

	if req.FieldID != "" {
		filters = append(filters, gDto.Filter{
			Field:    FieldFieldID,
			Operator: gDto.FilterOperatorEq,
			Value:    req.FieldID,
			Table:    TableName,
		})
	}

	if req.Date != "" {
		parsed, err := time.Parse(constant.DateOnly, req.Date)
		if err != nil {
			return gDto.FilterGroup{}, failure.BadRequestFromString("invalid date filter, expected YYYY-MM-DD") //nolint:wrapcheck
		}

		filters = append(filters, gDto.Filter{
			Operator: gDto.FilterPlainQuery,
			Value:    fmt.Sprintf("%s.%s::date = '%s'", TableName, FieldStartTime, parsed.Format(constant.DateOnly)),
		})
	}

	if req.Today {
		filters = append(filters, gDto.Filter{
			Operator: gDto.FilterPlainQuery,
			Value:    fmt.Sprintf("%s.%s::date = CURRENT_DATE", TableName, FieldStartTime),
		})
	}

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	}, nil
}
