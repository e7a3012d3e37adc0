// Package mapper turns application data into the fixed Dream Big form layout.
//
// MapToDocument is total: any missing field, including the organization
// record itself, renders as an empty cell or a "___" marker. It keeps no
// state between calls, so equal inputs always give equal trees.
package mapper

import (
	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/document"
)

// MapToDocument builds the complete application form for data.
func MapToDocument(data *application.ApplicationData) *document.Document {
	app := application.Resolve(data)
	org := app.Organization

	doc := document.New()
	doc.Title = formTitle + " " + formSubtitle

	doc.Append(
		&document.Paragraph{Style: "Title", Runs: []document.Run{{Text: formTitle, Bold: true}}},
		&document.Paragraph{Style: "Subtitle", Runs: []document.Run{{Text: formSubtitle, Bold: true}}},
		textParagraph("申請單位全銜："+application.CoalesceStr(string(org.FullName), longBlank),
			document.BaseSize, false, document.Spacing{Before: 400, After: 200}),
		textParagraph("申請計畫："+application.CoalesceStr(string(app.ProjectName), longBlank),
			document.BaseSize, false, document.Spacing{After: 400}),
	)

	doc.Append(
		sectionHeading(headingProject),
		ProjectTable(app),
		document.PageBreak{},
	)

	doc.Append(
		sectionHeading(headingBudget),
		textParagraph(budgetScope, 20, false, document.Spacing{After: 100}),
		BudgetTable(app.Budget),
		textParagraph(budgetFootnote, 18, false, document.Spacing{Before: 100}),
	)

	doc.Append(
		sectionHeading(headingAttendees),
		AttendeeTable(app.Attendees),
		textParagraph(meetingFootnote, 18, false, document.Spacing{Before: 100}),
		document.PageBreak{},
	)

	doc.Append(
		sectionHeading(headingOrg),
		OrganizationTable(org),
	)

	doc.Append(&document.Paragraph{
		Alignment: document.AlignCenter,
		Spacing:   document.Spacing{Before: 600, After: 200},
		Runs:      []document.Run{{Text: headingReminders, Bold: true, Size: 28}},
	})
	for _, r := range reminders {
		doc.Append(textParagraph(r, 20, false, document.Spacing{After: 100}))
	}

	return doc
}
