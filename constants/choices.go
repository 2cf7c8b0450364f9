package constants

// Roles for portal users
const (
	RoleCustomer = "customer"
	RoleStaff    = "staff"
)

// Urgency levels for bookings
const (
	UrgencyLow       = "low"       // within a week
	UrgencyMedium    = "medium"    // within 2-3 days
	UrgencyHigh      = "high"      // within 24 hours
	UrgencyEmergency = "emergency" // ASAP
)

// Priority levels for contact messages
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// Preferred contact methods on a customer profile
const (
	ContactMethodEmail = "email"
	ContactMethodPhone = "phone"
	ContactMethodText  = "text"
)

// Customer document types
const (
	DocumentInvoice  = "invoice"
	DocumentQuote    = "quote"
	DocumentWarranty = "warranty"
	DocumentReceipt  = "receipt"
	DocumentReport   = "report"
	DocumentOther    = "other"
)

// Gallery image categories
const (
	GalleryBeforeAfter  = "before_after"
	GalleryEmergency    = "emergency"
	GalleryInstallation = "installation"
	GalleryMaintenance  = "maintenance"
	GalleryTools        = "tools"
	GalleryTeam         = "team"
)

// Blog post categories
const (
	BlogCategoryDIY         = "diy"
	BlogCategoryMaintenance = "maintenance"
	BlogCategorySeasonal    = "seasonal"
	BlogCategoryCaseStudy   = "case_study"
	BlogCategoryNews        = "news"
)

// ValidBlogCategories lists the accepted blog post categories.
var ValidBlogCategories = []string{
	BlogCategoryDIY,
	BlogCategoryMaintenance,
	BlogCategorySeasonal,
	BlogCategoryCaseStudy,
	BlogCategoryNews,
}

// Review platforms
const (
	PlatformGoogle     = "google"
	PlatformYelp       = "yelp"
	PlatformTrustpilot = "trustpilot"
	PlatformReddit     = "reddit"
)

// ValidUrgencies lists the accepted booking urgency levels.
var ValidUrgencies = []string{UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyEmergency}

// ValidPriorities lists the accepted contact message priorities.
var ValidPriorities = []string{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// IsValidUrgency reports whether u is one of the defined urgency levels.
func IsValidUrgency(u string) bool {
	for _, v := range ValidUrgencies {
		if v == u {
			return true
		}
	}
	return false
}

// IsValidPriority reports whether p is one of the defined contact priorities.
func IsValidPriority(p string) bool {
	for _, v := range ValidPriorities {
		if v == p {
			return true
		}
	}
	return false
}
