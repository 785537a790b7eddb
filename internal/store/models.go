package store

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB object fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return "{}", nil
	}
	b, err := json.Marshal(j)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	raw, err := bytesOf(value, "JSONB")
	if err != nil {
		return err
	}

	if len(raw) == 0 || string(raw) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(raw, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// RawJSON holds an opaque JSON document (story scripts, canvas designs) that the
// service stores and returns without interpreting.
type RawJSON []byte

// Value implements the driver.Valuer interface for RawJSON
func (r RawJSON) Value() (driver.Value, error) {
	if r.IsNull() {
		return nil, nil
	}
	if !json.Valid(r) {
		return nil, errors.New("invalid JSON document")
	}
	return string(r), nil
}

// Scan implements the sql.Scanner interface for RawJSON
func (r *RawJSON) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	raw, err := bytesOf(value, "RawJSON")
	if err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		*r = nil
		return nil
	}
	*r = append((*r)[:0], raw...)
	return nil
}

// MarshalJSON emits the document verbatim, or null when empty.
func (r RawJSON) MarshalJSON() ([]byte, error) {
	if r.IsNull() {
		return []byte("null"), nil
	}
	return r, nil
}

// UnmarshalJSON keeps a copy of the raw document.
func (r *RawJSON) UnmarshalJSON(data []byte) error {
	if r == nil {
		return errors.New("store.RawJSON: UnmarshalJSON on nil pointer")
	}
	if string(bytes.TrimSpace(data)) == "null" {
		*r = nil
		return nil
	}
	*r = append((*r)[:0], data...)
	return nil
}

// IsNull reports whether the document is absent.
func (r RawJSON) IsNull() bool {
	return len(r) == 0 || string(bytes.TrimSpace(r)) == "null"
}

// IntArray is a custom type for PostgreSQL integer[] arrays
type IntArray []int

// Value implements the driver.Valuer interface for IntArray
func (a IntArray) Value() (driver.Value, error) {
	return a.Literal(), nil
}

// Literal renders the array in PostgreSQL text form, e.g. {1,2,3}.
func (a IntArray) Literal() string {
	parts := make([]string, len(a))
	for i, n := range a {
		parts[i] = strconv.Itoa(n)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Scan implements the sql.Scanner interface for IntArray
func (a *IntArray) Scan(value interface{}) error {
	if value == nil {
		*a = IntArray{}
		return nil
	}
	raw, err := bytesOf(value, "IntArray")
	if err != nil {
		return err
	}

	str := strings.Trim(string(raw), "{}")
	if str == "" {
		*a = IntArray{}
		return nil
	}

	parts := strings.Split(str, ",")
	result := make(IntArray, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return fmt.Errorf("invalid integer array element %q: %w", p, err)
		}
		result = append(result, n)
	}
	*a = result
	return nil
}

// Contains reports whether n is in the array.
func (a IntArray) Contains(n int) bool {
	for _, v := range a {
		if v == n {
			return true
		}
	}
	return false
}

// UUIDArray is a custom type for PostgreSQL uuid[] arrays
type UUIDArray []uuid.UUID

// Value implements the driver.Valuer interface for UUIDArray
func (a UUIDArray) Value() (driver.Value, error) {
	return a.Literal(), nil
}

// Literal renders the array in PostgreSQL text form.
func (a UUIDArray) Literal() string {
	parts := make([]string, len(a))
	for i, id := range a {
		parts[i] = id.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Scan implements the sql.Scanner interface for UUIDArray
func (a *UUIDArray) Scan(value interface{}) error {
	if value == nil {
		*a = UUIDArray{}
		return nil
	}
	raw, err := bytesOf(value, "UUIDArray")
	if err != nil {
		return err
	}

	str := strings.Trim(string(raw), "{}")
	if str == "" {
		*a = UUIDArray{}
		return nil
	}

	parts := strings.Split(str, ",")
	result := make(UUIDArray, 0, len(parts))
	for _, p := range parts {
		id, err := uuid.Parse(strings.Trim(strings.TrimSpace(p), `"`))
		if err != nil {
			return fmt.Errorf("invalid uuid array element %q: %w", p, err)
		}
		result = append(result, id)
	}
	*a = result
	return nil
}

// StringArray is a custom type for PostgreSQL text[] arrays
type StringArray []string

// Value implements the driver.Valuer interface for StringArray
func (a StringArray) Value() (driver.Value, error) {
	return a.Literal(), nil
}

// Literal renders the array in PostgreSQL text form with every element quoted.
func (a StringArray) Literal() string {
	quoted := make([]string, len(a))
	for i, s := range a {
		s = strings.ReplaceAll(s, `\`, `\\`)
		s = strings.ReplaceAll(s, `"`, `\"`)
		quoted[i] = `"` + s + `"`
	}
	return "{" + strings.Join(quoted, ",") + "}"
}

func bytesOf(value interface{}, typeName string) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported type for %s: %T", typeName, value)
	}
}

// scanJSON is shared by the typed JSONB payload columns.
func scanJSON(value interface{}, typeName string, dest interface{}) error {
	raw, err := bytesOf(value, typeName)
	if err != nil {
		return err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return json.Unmarshal(raw, dest)
}

func valueJSON(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// ============================================================================
// Users
// ============================================================================

const (
	RoleCreator  = "creator"
	RoleReceiver = "receiver"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Role         string    `db:"role" json:"role"`
	PasswordHash string    `db:"password_hash" json:"-"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Countdowns and day content
// ============================================================================

// QRReward is the reward revealed by a qr-type day.
type QRReward struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
	QRCode   string `json:"qrCode"`
}

func (q QRReward) Value() (driver.Value, error) { return valueJSON(q) }

func (q *QRReward) Scan(value interface{}) error {
	if value == nil {
		*q = QRReward{}
		return nil
	}
	return scanJSON(value, "QRReward", q)
}

// LegacyQRReward is an entry of the countdown-level qrRewards array that
// predates per-day cards.
type LegacyQRReward struct {
	Day      int    `json:"day"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
	QRCode   string `json:"qrCode"`
}

// LegacyQRRewards is stored as a JSONB array on the countdown row
type LegacyQRRewards []LegacyQRReward

func (l LegacyQRRewards) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return valueJSON([]LegacyQRReward(l))
}

func (l *LegacyQRRewards) Scan(value interface{}) error {
	*l = LegacyQRRewards{}
	if value == nil {
		return nil
	}
	return scanJSON(value, "LegacyQRRewards", (*[]LegacyQRReward)(l))
}

// VoucherDetail is the payload of a voucher-type day.
type VoucherDetail struct {
	Title      string `json:"title"`
	Message    string `json:"message"`
	Location   string `json:"location"`
	Terms      string `json:"terms"`
	ValidUntil string `json:"validUntil"`
}

// HasContent reports whether at least one field is filled in.
func (v VoucherDetail) HasContent() bool {
	return v.Title != "" || v.Message != "" || v.Location != "" || v.Terms != "" || v.ValidUntil != ""
}

func (v VoucherDetail) Value() (driver.Value, error) { return valueJSON(v) }

func (v *VoucherDetail) Scan(value interface{}) error {
	if value == nil {
		*v = VoucherDetail{}
		return nil
	}
	return scanJSON(value, "VoucherDetail", v)
}

type Countdown struct {
	ID           uuid.UUID       `db:"id" json:"id"`
	CreatorID    uuid.UUID       `db:"creator_id" json:"creatorId"`
	Title        string          `db:"title" json:"title"`
	Description  string          `db:"description" json:"description"`
	CoverImage   string          `db:"cover_image" json:"coverImage"`
	ThemeColors  JSONB           `db:"theme_colors" json:"themeColors"`
	StartDate    *time.Time      `db:"start_date" json:"startDate"`
	EndDate      *time.Time      `db:"end_date" json:"endDate"`
	TotalDays    int             `db:"total_days" json:"totalDays"`
	Type         string          `db:"type" json:"type"`
	QRRewards    LegacyQRRewards `db:"qr_rewards" json:"qrRewards,omitempty"`
	RecipientIDs UUIDArray       `db:"recipient_ids" json:"recipientIds,omitempty"`
	CreatedAt    time.Time       `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updatedAt"`
}

type DayCard struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	CountdownID   uuid.UUID      `db:"countdown_id" json:"countdownId"`
	Day           int            `db:"day" json:"day"`
	Title         string         `db:"title" json:"title"`
	Description   string         `db:"description" json:"description"`
	CoverImage    string         `db:"cover_image" json:"coverImage"`
	Type          string         `db:"type" json:"type"`
	CGScript      RawJSON        `db:"cg_script" json:"cgScript"`
	QRReward      *QRReward      `db:"qr_reward" json:"qrReward"`
	VoucherDetail *VoucherDetail `db:"voucher_detail" json:"voucherDetail"`
	CreatedAt     time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updatedAt"`
}

// ============================================================================
// Assignments, invitations and print cards
// ============================================================================

const (
	AssignmentStatusLocked   = "locked"
	AssignmentStatusUnlocked = "unlocked"
	AssignmentStatusActive   = "active"
)

type Assignment struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	CountdownID  uuid.UUID  `db:"countdown_id" json:"countdownId"`
	ReceiverID   uuid.UUID  `db:"receiver_id" json:"receiverId"`
	Status       string     `db:"status" json:"status"`
	UnlockedOn   *time.Time `db:"unlocked_on" json:"unlockedOn"`
	UnlockedDays IntArray   `db:"unlocked_days" json:"unlockedDays"`
	CreatedAt    time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updatedAt"`
}

type Invitation struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Token       string     `db:"token" json:"token"`
	CountdownID uuid.UUID  `db:"countdown_id" json:"countdownId"`
	CreatedBy   uuid.UUID  `db:"created_by" json:"createdBy"`
	Email       *string    `db:"email" json:"email,omitempty"`
	ExpiresAt   time.Time  `db:"expires_at" json:"expiresAt"`
	AcceptedAt  *time.Time `db:"accepted_at" json:"acceptedAt,omitempty"`
	AcceptedBy  *uuid.UUID `db:"accepted_by" json:"acceptedBy,omitempty"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
}

type PrintCard struct {
	ID              uuid.UUID `db:"id" json:"id"`
	CountdownID     uuid.UUID `db:"countdown_id" json:"countdownId"`
	Day             int       `db:"day" json:"day"`
	CanvasJSON      RawJSON   `db:"canvas_json" json:"canvasJson"`
	PreviewImageURL string    `db:"preview_image_url" json:"previewImageUrl"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
