package mapper

import (
	"strconv"
	"strings"

	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/document"
)

const (
	projectLabelWidth   = 3000
	projectContentWidth = 6360
)

type projectRow struct {
	label   string
	content func(app *application.ApplicationData) string
}

var projectRows = []projectRow{
	{
		label:   "服務區域概況及需求說明\n（請說明與計畫相關之區域現況及弱勢程度描述，以及為何需要Dream Big元大公益圓夢計畫協助，亦可提供相關統計數據輔助說明。）",
		content: func(a *application.ApplicationData) string { return string(a.ServiceAreaDescription) },
	},
	{
		label:   "服務目的（預期藉由計畫解決之問題）",
		content: func(a *application.ApplicationData) string { return string(a.ServicePurpose) },
	},
	{
		label:   "請條列單位目前「所有」服務項目與內容說明\n（除列出項目外，敬請量化說明服務內容，例如：每周針對偏鄉學童進行2次才藝課程）",
		content: func(a *application.ApplicationData) string { return string(a.CurrentServices) },
	},
	{
		label:   "請勾選本次計畫可對應到之聯合國永續發展目標(Sustainable Development Goals, SDGs)",
		content: func(a *application.ApplicationData) string { return FormatSDGs(a.SDGs) },
	},
	{
		label:   "請詳述預計申請Dream Big元大公益圓夢計畫經費所進行的服務項目，包括內容規劃及時程",
		content: func(a *application.ApplicationData) string { return string(a.ProjectDetails) },
	},
	{
		label:   "呈上題，請說明此申請項目，過去所產生的「社會效益」或「正面影響力」為何，若無則可填無。",
		content: func(a *application.ApplicationData) string { return string(a.PastImpact) },
	},
	{
		label:   "期望元大金控集團暨子公司之企業志工、元大文教基金會或其他資源為您的計畫提供什麼協助或合作？預期如何與元大金控集團共同合作與連結？",
		content: func(a *application.ApplicationData) string { return string(a.CorporateConnection) },
	},
	{
		label:   "預期計畫成效，請說明獲得Dream Big元大公益圓夢計畫之經費與志工等資源後，預計達成之至少三項目標。敬請以質化與量化資料呈現",
		content: func(a *application.ApplicationData) string { return string(a.ExpectedOutcomes) },
	},
	{
		label:   "請說明計畫成果預計發表方式與完成時間",
		content: func(a *application.ApplicationData) string { return string(a.PresentationPlan) },
	},
	{
		label:   "單位現有之宣傳資源或管道，以及可因應此計畫使用之宣傳方式",
		content: func(a *application.ApplicationData) string { return string(a.PromotionResources) },
	},
}

// ProjectTable builds the ten-row project content table.
func ProjectTable(app *application.ApplicationData) *document.Table {
	if app == nil {
		app = &application.ApplicationData{}
	}
	rows := make([]document.Row, 0, len(projectRows))
	for _, pr := range projectRows {
		rows = append(rows, document.Row{Cells: []document.Cell{
			headerCell(pr.label, projectLabelWidth),
			contentCell(pr.content(app), projectContentWidth),
		}})
	}
	return fullWidthTable([]int{projectLabelWidth, projectContentWidth}, rows)
}

// FormatSDGs renders the full 17-goal checklist on one line, marking the
// goals whose numbers appear in selected.
func FormatSDGs(selected []int) string {
	chosen := sdgSet(selected)
	items := make([]string, len(sdgGoals))
	for i, g := range sdgGoals {
		mark := Unchecked
		if chosen[g.Number] {
			mark = Checked
		}
		items[i] = mark + strconv.Itoa(g.Number) + g.Label
	}
	return strings.Join(items, " ")
}

// SelectedSDGs returns the known goals named in selected, in goal order.
// Unknown numbers and duplicates are dropped.
func SelectedSDGs(selected []int) []SDGGoal {
	chosen := sdgSet(selected)
	var out []SDGGoal
	for _, g := range sdgGoals {
		if chosen[g.Number] {
			out = append(out, g)
		}
	}
	return out
}

func sdgSet(selected []int) map[int]bool {
	chosen := make(map[int]bool, len(selected))
	for _, n := range selected {
		chosen[n] = true
	}
	return chosen
}
