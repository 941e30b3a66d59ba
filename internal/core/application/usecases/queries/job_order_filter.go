package queries

import (
	"context"
	"strconv"
	"strings"
	"time"

	"atelier/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// DateField selects which date the from/to range of a filter applies to.
type DateField string

const (
	// ByCreatedAt is used by the general order list and its statistics.
	ByCreatedAt DateField = "created_at"
	// ByDeliveryDate is used by the deliveries view.
	ByDeliveryDate DateField = "delivery_date"
)

const (
	dateLayout   = "2006-01-02"
	statusAll    = "all"
	searchEscape = `\`
)

// FilterParams are list filters exactly as received from a client.
type FilterParams struct {
	FromDate      string
	ToDate        string
	Status        string
	CustomerID    string
	PaymentMethod string
	IsBlocked     string
	Search        string
	Limit         string
}

// JobOrderFilter is a parsed set of list filters. Nil fields are not applied.
type JobOrderFilter struct {
	DateField     DateField
	From          *time.Time
	To            *time.Time
	Status        *order.Status
	CustomerID    *int64
	PaymentMethod *order.PaymentMethod
	IsBlocked     *bool
	Search        string
	Limit         int
}

// ParseFilter turns client parameters into a filter. Malformed values are
// dropped: a bad date or an unknown status simply does not filter.
func ParseFilter(field DateField, p FilterParams) JobOrderFilter {
	f := JobOrderFilter{DateField: field, Search: strings.TrimSpace(p.Search)}
	if f.DateField != ByDeliveryDate {
		f.DateField = ByCreatedAt
	}

	if d, err := time.Parse(dateLayout, strings.TrimSpace(p.FromDate)); err == nil {
		f.From = &d
	}
	if d, err := time.Parse(dateLayout, strings.TrimSpace(p.ToDate)); err == nil {
		end := d.AddDate(0, 0, 1)
		f.To = &end
	}

	if raw := strings.TrimSpace(p.Status); raw != "" && !strings.EqualFold(raw, statusAll) {
		if s, err := order.ParseStatus(raw); err == nil {
			f.Status = &s
		}
	}

	if id, err := strconv.ParseInt(strings.TrimSpace(p.CustomerID), 10, 64); err == nil && id > 0 {
		f.CustomerID = &id
	}

	if raw := strings.TrimSpace(p.PaymentMethod); raw != "" {
		if m, err := order.ParsePaymentMethod(raw); err == nil {
			f.PaymentMethod = &m
		}
	}

	if raw := strings.TrimSpace(p.IsBlocked); raw != "" {
		blocked := isTruthy(raw)
		f.IsBlocked = &blocked
	}

	if n, err := strconv.Atoi(strings.TrimSpace(p.Limit)); err == nil && n > 0 {
		f.Limit = n
	}
	return f
}

func isTruthy(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// apply adds the filter conditions, without ordering or limit, to a query
// built by activeJobOrders.
func (f JobOrderFilter) apply(q *gorm.DB) *gorm.DB {
	column := "jo." + string(f.DateField)
	if f.From != nil {
		q = q.Where(column+" >= ?", f.From.UTC())
	}
	if f.To != nil {
		q = q.Where(column+" < ?", f.To.UTC())
	}
	if f.Status != nil {
		q = q.Where("jo.status = ?", string(*f.Status))
	}
	if f.CustomerID != nil {
		q = q.Where("jo.customer_id = ?", *f.CustomerID)
	}
	if f.PaymentMethod != nil {
		q = q.Where("jo.payment_method = ?", string(*f.PaymentMethod))
	}
	if f.IsBlocked != nil {
		q = q.Where("jo.is_blocked = ?", *f.IsBlocked)
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(f.Search)) + "%"
		q = q.Where(`(LOWER(jo.job_order_number) LIKE ? ESCAPE '\' OR LOWER(c.name) LIKE ? ESCAPE '\'
			OR LOWER(c.phone) LIKE ? ESCAPE '\' OR LOWER(c.customer_code) LIKE ? ESCAPE '\')`,
			pattern, pattern, pattern, pattern)
	}
	return q
}

func escapeLike(s string) string {
	return strings.NewReplacer(searchEscape, searchEscape+searchEscape, "%", searchEscape+"%", "_", searchEscape+"_").Replace(s)
}

// findJobOrders runs the filtered list query, newest first.
func findJobOrders(ctx context.Context, db *gorm.DB, f JobOrderFilter) ([]JobOrderView, error) {
	q := f.apply(activeJobOrders(ctx, db)).
		Select(jobOrderColumns).
		Order("jo.created_at DESC").
		Order("jo.id DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var rows []jobOrderRow
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return assembleViews(ctx, db, rows)
}
