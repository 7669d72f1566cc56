package kernel

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrOrderNumberIsNotConstructed indicates that an OrderNumber was not created
// through GenerateOrderNumber or OrderNumberFromString.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via GenerateOrderNumber or OrderNumberFromString",
)

// orderNumberPattern matches "ORD-<14-digit timestamp>-<8 uppercase hex chars>".
var orderNumberPattern = regexp.MustCompile(`^ORD-\d{14}-[0-9A-F]{8}$`)

// OrderNumber is the human-readable order identifier shown to back-office
// staff and customers, distinct from the order's UUID. It is generated once
// at order creation and never changes.
//
// Format: ORD-<yyyyMMddHHmmss>-<8-char random suffix>, e.g.
// ORD-20250114093245-F47AC10B.
type OrderNumber struct {
	value string

	guard guard.ConstructorGuard
}

// GenerateOrderNumber creates a new order number stamped with the given time.
// The random suffix comes from a fresh UUID, uppercased.
func GenerateOrderNumber(now time.Time) OrderNumber {
	timestamp := now.Format("20060102150405")
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return OrderNumber{
		value: fmt.Sprintf("ORD-%s-%s", timestamp, suffix),
		guard: guard.NewConstructorGuard(),
	}
}

// OrderNumberFromString reconstructs an order number from persistence.
// The value must match the generated format exactly.
func OrderNumberFromString(s string) (OrderNumber, error) {
	if !orderNumberPattern.MatchString(s) {
		return OrderNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"order number is invalid",
			fmt.Errorf("%q does not match the ORD-<timestamp>-<suffix> format", s),
		)
	}
	return OrderNumber{value: s, guard: guard.NewConstructorGuard()}, nil
}

// String returns the order number text.
func (n OrderNumber) String() string {
	return n.value
}

// IsEqual reports whether two order numbers carry the same value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// Validate returns ErrOrderNumberIsNotConstructed for the zero value.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}
