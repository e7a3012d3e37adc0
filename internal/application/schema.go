package application

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ApplicationData is the top-level structure supplied by the applicant.
// Every field is optional; the mapper fills blanks for anything missing.
type ApplicationData struct {
	ProjectName  Str           `json:"projectName"`
	Organization *Organization `json:"organization,omitempty"`

	ServiceAreaDescription Str `json:"serviceAreaDescription"`
	ServicePurpose         Str `json:"servicePurpose"`
	CurrentServices        Str `json:"currentServices"`
	ProjectDetails         Str `json:"projectDetails"`
	PastImpact             Str `json:"pastImpact"`
	CorporateConnection    Str `json:"corporateConnection"`
	ExpectedOutcomes       Str `json:"expectedOutcomes"`
	PresentationPlan       Str `json:"presentationPlan"`
	PromotionResources     Str `json:"promotionResources"`

	SDGs      SDGList               `json:"sdgs"`
	Budget    []BudgetItem          `json:"budget,omitempty"`
	Attendees map[string][]Attendee `json:"attendees,omitempty"`
}

// Organization describes the applying unit.
type Organization struct {
	FullName            Str `json:"fullName"`
	EstablishedDate     Str `json:"establishedDate"`
	ApprovalAuthority   Str `json:"approvalAuthority"`
	RegistrationNumber  Str `json:"registrationNumber"`
	RegistrationAddress Str `json:"registrationAddress"`
	MailingAddress      Str `json:"mailingAddress"`

	DirectorName  Str `json:"directorName"`
	DirectorTitle Str `json:"directorTitle"`
	ContactName   Str `json:"contactName"`
	ContactTitle  Str `json:"contactTitle"`
	ContactMobile Str `json:"contactMobile"`
	ContactPhone  Str `json:"contactPhone"`
	ContactEmail  Str `json:"contactEmail"`
	Fax           Str `json:"fax"`
	Website       Str `json:"website"`

	ServiceTargets *ServiceTargets `json:"serviceTargets,omitempty"`
	Financial      *Financial      `json:"financial,omitempty"`

	FullTimeStaff Scalar `json:"fullTimeStaff"`
	PartTimeStaff Scalar `json:"partTimeStaff"`
	Volunteers    Scalar `json:"volunteers"`

	OrgChart Str `json:"orgChart"`
}

// ServiceTargets lists the populations served, one optional entry per category.
type ServiceTargets struct {
	Children *TargetGroup `json:"children,omitempty"`
	Youth    *TargetGroup `json:"youth,omitempty"`
	Adults   *TargetGroup `json:"adults,omitempty"`
	Elderly  *TargetGroup `json:"elderly,omitempty"`
	Other    *OtherTarget `json:"other,omitempty"`
}

// TargetGroup is a served population with a head count and category tags.
type TargetGroup struct {
	Count Scalar `json:"count"`
	Types []Str  `json:"types,omitempty"`
}

// OtherTarget is a free-form served population.
type OtherTarget struct {
	Count       Scalar `json:"count"`
	Description Str    `json:"description"`
}

// Financial is the unit's funding breakdown. Percentages are not expected to
// sum to 100.
type Financial struct {
	TotalAssets   Scalar `json:"totalAssets"`
	AnnualRevenue Scalar `json:"annualRevenue"`

	GovernmentGrant Scalar `json:"governmentGrant"`
	NPOGrant        Scalar `json:"npoGrant"`
	ServiceIncome   Scalar `json:"serviceIncome"`
	BusinessIncome  Scalar `json:"businessIncome"`

	CorporateSponsorship *Sponsorship  `json:"corporateSponsorship,omitempty"`
	Other                *OtherFunding `json:"other,omitempty"`
}

// Sponsorship is the corporate-sponsorship share and the sponsoring companies.
type Sponsorship struct {
	Percentage Scalar `json:"percentage"`
	Companies  Str    `json:"companies"`
}

// OtherFunding is an uncategorised funding share.
type OtherFunding struct {
	Percentage  Scalar `json:"percentage"`
	Description Str    `json:"description"`
}

// BudgetItem is one line of the project budget. Amount is entered
// independently and is not derived from UnitPrice and Quantity.
type BudgetItem struct {
	Name      Str    `json:"name"`
	UnitPrice Scalar `json:"unitPrice"`
	Quantity  Scalar `json:"quantity"`
	Amount    Scalar `json:"amount"`
	Note      Str    `json:"note"`
}

// Attendee is a representative expected at a programme meeting.
type Attendee struct {
	Name  Str `json:"name"`
	Title Str `json:"title"`
	Phone Str `json:"phone"`
	Email Str `json:"email"`
}

// Decode parses a JSON document into ApplicationData.
func Decode(data []byte) (*ApplicationData, error) {
	var app ApplicationData
	if err := json.Unmarshal(data, &app); err != nil {
		return nil, fmt.Errorf("parsing application data: %w", err)
	}
	return &app, nil
}

// DecodeJSON decodes an already-extracted JSON value, such as the data
// argument of a tool call.
func DecodeJSON(raw json.RawMessage) (*ApplicationData, error) {
	if len(raw) == 0 {
		return &ApplicationData{}, nil
	}
	return Decode(raw)
}

// DecodeYAML parses a YAML document into ApplicationData. The YAML tree is
// re-encoded as JSON so both formats share one set of decoding rules.
func DecodeYAML(data []byte) (*ApplicationData, error) {
	var tree any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("parsing application data: %w", err)
	}
	if tree == nil {
		return &ApplicationData{}, nil
	}
	raw, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("converting yaml application data: %w", err)
	}
	return Decode(raw)
}

// Load reads an application data file. Files ending in .yaml or .yml are
// parsed as YAML, everything else as JSON.
func Load(path string) (*ApplicationData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return DecodeYAML(data)
	default:
		return Decode(data)
	}
}

// Encode renders ApplicationData as indented JSON.
func Encode(app *ApplicationData) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(app); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
