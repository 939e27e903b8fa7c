package domain

// ContactSource tells the CRM where a reader contact came from.
type ContactSource string

const (
	ContactSourcePurchase ContactSource = "book_purchase"
	ContactSourceEmail    ContactSource = "email_signup"
	ContactSourceSocial   ContactSource = "social"
)

// ReaderContact is a reader identity pushed to the CRM, tagged with the
// publishing project that acquired them.
type ReaderContact struct {
	Email     string        `json:"email"`
	Name      string        `json:"name"`
	Source    ContactSource `json:"source"`
	ProjectID string        `json:"project_id"`
}
