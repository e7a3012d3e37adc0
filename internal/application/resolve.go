package application

import (
	"slices"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Resolve returns a copy of data with every nested record the mapper walks
// filled in, so mapping code never checks for nil parents. Optional
// sub-records whose absence changes the output (financial breakdown,
// service targets, individual target groups) stay nil. Every text leaf is
// NFC-normalised and line endings are folded to "\n". The input is not
// modified.
//
// Resolve never fails; a nil data yields an empty application.
func Resolve(data *ApplicationData) *ApplicationData {
	out := &ApplicationData{}
	if data != nil {
		*out = *data
	}

	org := Organization{}
	if out.Organization != nil {
		org = *out.Organization
	}
	out.Organization = &org

	cleanAll(
		&out.ProjectName,
		&out.ServiceAreaDescription,
		&out.ServicePurpose,
		&out.CurrentServices,
		&out.ProjectDetails,
		&out.PastImpact,
		&out.CorporateConnection,
		&out.ExpectedOutcomes,
		&out.PresentationPlan,
		&out.PromotionResources,
	)
	resolveOrganization(&org)

	if out.Budget != nil {
		out.Budget = slices.Clone(out.Budget)
		for i := range out.Budget {
			cleanAll(&out.Budget[i].Name, &out.Budget[i].Note)
		}
	}

	attendees := make(map[string][]Attendee, len(out.Attendees))
	for key, people := range out.Attendees {
		people = slices.Clone(people)
		for i := range people {
			p := &people[i]
			cleanAll(&p.Name, &p.Title, &p.Phone, &p.Email)
		}
		attendees[key] = people
	}
	out.Attendees = attendees
	return out
}

func resolveOrganization(org *Organization) {
	cleanAll(
		&org.FullName,
		&org.EstablishedDate,
		&org.ApprovalAuthority,
		&org.RegistrationNumber,
		&org.RegistrationAddress,
		&org.MailingAddress,
		&org.DirectorName,
		&org.DirectorTitle,
		&org.ContactName,
		&org.ContactTitle,
		&org.ContactMobile,
		&org.ContactPhone,
		&org.ContactEmail,
		&org.Fax,
		&org.Website,
		&org.OrgChart,
	)

	if t := org.ServiceTargets; t != nil {
		targets := *t
		for _, g := range []**TargetGroup{&targets.Children, &targets.Youth, &targets.Adults, &targets.Elderly} {
			if *g == nil {
				continue
			}
			group := **g
			group.Types = slices.Clone(group.Types)
			for i := range group.Types {
				cleanAll(&group.Types[i])
			}
			*g = &group
		}
		if targets.Other != nil {
			other := *targets.Other
			cleanAll(&other.Description)
			targets.Other = &other
		}
		org.ServiceTargets = &targets
	}

	if f := org.Financial; f != nil {
		fin := *f
		if fin.CorporateSponsorship != nil {
			sp := *fin.CorporateSponsorship
			cleanAll(&sp.Companies)
			fin.CorporateSponsorship = &sp
		}
		if fin.Other != nil {
			other := *fin.Other
			cleanAll(&other.Description)
			fin.Other = &other
		}
		org.Financial = &fin
	}
}

func cleanAll(fields ...*Str) {
	for _, p := range fields {
		*p = Str(CleanText(string(*p)))
	}
}

// CleanText normalises s to NFC and folds CRLF and CR line endings to LF.
func CleanText(s string) string {
	if s == "" {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return norm.NFC.String(s)
}

// CoalesceStr returns the first non-empty string from vals.
func CoalesceStr(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
