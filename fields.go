package sitelens

// Source labels derived from the domain of the page.
const (
	SourceLinkedIn = "LinkedIn"
	SourceFacebook = "Facebook"
	SourceTwitter  = "Twitter"
	SourceWebsite  = "Website"
)

// Page type labels, assigned by the presence of structural elements.
const (
	PageTypeArticle = "Article"
	PageTypeForm    = "Form/Contact"
	PageTypeData    = "Data"
	PageTypeGeneral = "General"
)

// FieldRecord is the normalized set of fields extracted from a page.
// An empty string means no extraction rule matched.
type FieldRecord struct {
	Title          string `json:"title,omitempty"`
	Description    string `json:"description,omitempty"`
	Name           string `json:"name,omitempty"`
	About          string `json:"about,omitempty"`
	Source         string `json:"source,omitempty"`
	Industry       string `json:"industry,omitempty"`
	ContactPhone   string `json:"contact_phone,omitempty"`
	ContactAddress string `json:"contact_address,omitempty"`
	Email          string `json:"email,omitempty"`
	PageType       string `json:"page_type,omitempty"`
}

// Metadata holds page-level metadata.
type Metadata struct {
	Title       string `json:"meta_title,omitempty"`
	Description string `json:"meta_description,omitempty"`

	// OpenGraph maps the property suffix after "og:" to its content.
	OpenGraph map[string]string `json:"og_data"`
}
