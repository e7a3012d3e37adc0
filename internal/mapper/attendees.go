package mapper

import (
	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/document"
)

var attendeeColumns = []int{2800, 1500, 1500, 1700, 1860}

// AttendeeTable builds the meeting representative table. Every meeting gets
// exactly its fixed number of rows; missing people render as blank rows and
// extra people are dropped. Only the first row of a meeting carries its label.
func AttendeeTable(attendees map[string][]application.Attendee) *document.Table {
	rows := make([]document.Row, 0, 1+len(meetings)*2)

	header := make([]document.Cell, len(attendeeHeaders))
	for i, h := range attendeeHeaders {
		header[i] = headerCell(h, attendeeColumns[i])
	}
	rows = append(rows, document.Row{Cells: header})

	for _, m := range meetings {
		people := attendees[m.Key]
		for i := 0; i < m.Seats; i++ {
			var p application.Attendee
			if i < len(people) {
				p = people[i]
			}
			label := ""
			if i == 0 {
				label = m.Label
			}
			rows = append(rows, document.Row{Cells: []document.Cell{
				headerCell(label, attendeeColumns[0]),
				contentCell(string(p.Name), attendeeColumns[1]),
				contentCell(string(p.Title), attendeeColumns[2]),
				contentCell(string(p.Phone), attendeeColumns[3]),
				contentCell(string(p.Email), attendeeColumns[4]),
			}})
		}
	}

	return fullWidthTable(attendeeColumns, rows)
}
