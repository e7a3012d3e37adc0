package mapper

import (
	"fmt"
	"strings"

	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/document"
)

const (
	orgCol1 = 2000
	orgCol2 = 2680
	orgCol3 = 1500
	orgCol4 = 3180

	orgValueWidth = orgCol2 + orgCol3 + orgCol4
)

// OrganizationTable builds the fourteen-row organisation profile table.
func OrganizationTable(org *application.Organization) *document.Table {
	if org == nil {
		org = &application.Organization{}
	}

	rows := []document.Row{
		wideRow("計畫申請人/單位\n(全銜)", string(org.FullName)),
		pairRow("成立時間", string(org.EstablishedDate), "核准機關", string(org.ApprovalAuthority)),
		wideRow("立案字號", string(org.RegistrationNumber)),
		wideRow("立案地址", string(org.RegistrationAddress)),
		wideRow("通訊地址", string(org.MailingAddress)),
		pairRow("單位負責人姓名", string(org.DirectorName), "職稱", string(org.DirectorTitle)),
		pairRow("聯絡人姓名", string(org.ContactName), "職稱", string(org.ContactTitle)),
		pairRow("聯絡人手機", string(org.ContactMobile), "室內電話", string(org.ContactPhone)),
		pairRow("傳真", string(org.Fax), "聯絡人E-mail", string(org.ContactEmail)),
		wideRow("單位官網/社群", string(org.Website)),
		wideRow("單位主要服務對象", strings.Join(FormatServiceTargets(org.ServiceTargets), "\n")),
		wideRow("單位經費說明", strings.Join(FormatFinancial(org.Financial), "\n")),
		wideRow("單位人事概況", FormatStaffing(org)),
		wideRow("單位組織圖", application.CoalesceStr(string(org.OrgChart), orgChartHint)),
	}

	return fullWidthTable([]int{orgCol1, orgCol2, orgCol3, orgCol4}, rows)
}

// FormatStaffing renders the head-count line, using "___" for missing counts.
func FormatStaffing(org *application.Organization) string {
	return fmt.Sprintf("全職人員%s人 / 兼職人員%s人 / 固定志工%s人",
		org.FullTimeStaff.Or(Blank),
		org.PartTimeStaff.Or(Blank),
		org.Volunteers.Or(Blank))
}

// wideRow is a label followed by one value cell spanning the remaining columns.
func wideRow(label, value string) document.Row {
	return document.Row{Cells: []document.Cell{
		headerCell(label, orgCol1),
		spanned(contentCell(value, orgValueWidth), 3),
	}}
}

// pairRow is two label/value pairs side by side.
func pairRow(label1, value1, label2, value2 string) document.Row {
	return document.Row{Cells: []document.Cell{
		headerCell(label1, orgCol1),
		contentCell(value1, orgCol2),
		headerCell(label2, orgCol3),
		contentCell(value2, orgCol4),
	}}
}
