package mapper

import (
	"fmt"
	"strings"

	"github.com/dreambig/appgen/internal/application"
)

// lineRule emits one formatted line when its predicate holds. Rules are
// evaluated in slice order, which fixes the category order of the output.
type lineRule[T any] struct {
	present func(T) bool
	format  func(T) string
}

func applyRules[T any](v T, rules []lineRule[T]) []string {
	var lines []string
	for _, r := range rules {
		if r.present(v) {
			lines = append(lines, r.format(v))
		}
	}
	return lines
}

func groupRule(label, ages string, pick func(*application.ServiceTargets) *application.TargetGroup) lineRule[*application.ServiceTargets] {
	return lineRule[*application.ServiceTargets]{
		present: func(t *application.ServiceTargets) bool { return pick(t) != nil },
		format: func(t *application.ServiceTargets) string {
			g := pick(t)
			return fmt.Sprintf("%s %s%s人%s - %s", Checked, label, g.Count.Or(Blank), ages, strings.Join(application.Strings(g.Types), "、"))
		},
	}
}

var serviceTargetRules = []lineRule[*application.ServiceTargets]{
	groupRule("兒童", "(0-12歲)", func(t *application.ServiceTargets) *application.TargetGroup { return t.Children }),
	groupRule("青少年", "(13-18歲)", func(t *application.ServiceTargets) *application.TargetGroup { return t.Youth }),
	groupRule("成人", "(19-65歲)", func(t *application.ServiceTargets) *application.TargetGroup { return t.Adults }),
	groupRule("老人", "(65歲以上)", func(t *application.ServiceTargets) *application.TargetGroup { return t.Elderly }),
	{
		present: func(t *application.ServiceTargets) bool { return t.Other != nil },
		format: func(t *application.ServiceTargets) string {
			return fmt.Sprintf("%s 其他%s人 - %s", Checked, t.Other.Count.Or(Blank), t.Other.Description)
		},
	},
}

// FormatServiceTargets returns one line per served population present in
// targets, always in children, youth, adults, elderly, other order.
func FormatServiceTargets(targets *application.ServiceTargets) []string {
	if targets == nil {
		return nil
	}
	return applyRules(targets, serviceTargetRules)
}

func scalarRule(pick func(*application.Financial) application.Scalar, layout string) lineRule[*application.Financial] {
	return lineRule[*application.Financial]{
		present: func(f *application.Financial) bool { return pick(f).Present() },
		format:  func(f *application.Financial) string { return fmt.Sprintf(layout, pick(f).String()) },
	}
}

var financialSummaryRules = []lineRule[*application.Financial]{
	scalarRule(func(f *application.Financial) application.Scalar { return f.TotalAssets }, "總資產或資本額 %s 元"),
	scalarRule(func(f *application.Financial) application.Scalar { return f.AnnualRevenue }, "最近一年年營收(含捐贈) %s 元"),
}

var fundingSourceRules = []lineRule[*application.Financial]{
	scalarRule(func(f *application.Financial) application.Scalar { return f.GovernmentGrant }, "政府補助 %s%%"),
	scalarRule(func(f *application.Financial) application.Scalar { return f.NPOGrant }, "其他非營利組織 %s%%"),
	scalarRule(func(f *application.Financial) application.Scalar { return f.ServiceIncome }, "服務收費 %s%%"),
	scalarRule(func(f *application.Financial) application.Scalar { return f.BusinessIncome }, "社會事業收入 %s%%"),
	{
		present: func(f *application.Financial) bool { return f.CorporateSponsorship != nil },
		format: func(f *application.Financial) string {
			s := f.CorporateSponsorship
			return fmt.Sprintf("企業贊助 %s%%（%s）", s.Percentage.Raw(), s.Companies)
		},
	},
	{
		present: func(f *application.Financial) bool { return f.Other != nil },
		format: func(f *application.Financial) string {
			return fmt.Sprintf("其他 %s%%（%s）", f.Other.Percentage.Raw(), f.Other.Description)
		},
	},
}

// FormatFinancial returns the total-assets and annual-revenue lines when
// present, then a single "經費來源：" line joining every funding source that
// is present. The sources line is omitted when no source is present.
func FormatFinancial(f *application.Financial) []string {
	if f == nil {
		return nil
	}
	lines := applyRules(f, financialSummaryRules)
	if sources := applyRules(f, fundingSourceRules); len(sources) > 0 {
		lines = append(lines, "經費來源："+strings.Join(sources, "、"))
	}
	return lines
}
