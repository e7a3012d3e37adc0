package mapper

import "slices"

// Check glyphs used by the SDG checklist and the service-target lines.
const (
	Checked   = "☑"
	Unchecked = "□"
)

// Blank is the fill-in marker for missing counts.
const Blank = "___"

const (
	formTitle    = "Dream Big元大公益圓夢計畫"
	formSubtitle = "第九屆單位申請書"
	longBlank    = "________________________________________"

	orgChartHint = "※請用文字說明、或可用圖表呈現，並清楚填寫姓名。"
)

// SDGGoal is one of the UN Sustainable Development Goals on the checklist.
type SDGGoal struct {
	Number int
	Label  string
}

// sdgGoals is the fixed checklist, in form order.
var sdgGoals = [...]SDGGoal{
	{1, "消除貧窮"},
	{2, "消除飢餓"},
	{3, "健康福祉"},
	{4, "教育品質"},
	{5, "性別平等"},
	{6, "環境品質"},
	{7, "可負擔能源"},
	{8, "就業與經濟成長"},
	{9, "永續運輸"},
	{10, "減少不平等"},
	{11, "永續城市"},
	{12, "責任消費與生產"},
	{13, "氣候行動"},
	{14, "海洋生態"},
	{15, "陸地生態"},
	{16, "和平與正義制度"},
	{17, "全球夥伴"},
}

// Meeting is a scheduled programme meeting with a fixed number of
// representative slots.
type Meeting struct {
	Key   string
	Label string
	Seats int
}

var meetings = [...]Meeting{
	{Key: "kickoff", Label: "期初發表會", Seats: 2},
	{Key: "final", Label: "期末發表會", Seats: 2},
	{Key: "progress1", Label: "第一次\n計畫進度會議\n暨圓夢工作坊", Seats: 2},
	{Key: "progress2", Label: "第二次\n計畫進度會議", Seats: 2},
}

// SDGGoals returns the goal checklist in form order.
func SDGGoals() []SDGGoal {
	return slices.Clone(sdgGoals[:])
}

// Meetings returns the attendance schedule in form order.
func Meetings() []Meeting {
	return slices.Clone(meetings[:])
}

var (
	budgetHeaders    = []string{"項目", "單價", "數量", "金額", "備註"}
	budgetTotalLabel = "預算金額總計"
	attendeeHeaders  = []string{"項目", "姓名", "職稱", "電話", "email"}
)

const (
	headingProject   = "【計畫內容表】"
	headingBudget    = "【計畫預算表】"
	headingAttendees = "【預計出席人員代表】"
	headingOrg       = "【單位概況表】"
	headingReminders = "★ 提醒事項 ★"

	budgetScope     = "（含活動費用、場地租借、講師費用、交通費、雜支及預估往返台北市之會議出席車資等）"
	budgetFootnote  = "【註】以上項目可視需求自行加列，相關會議與活動均依衛生福利部疾病管制署規定或實際狀況彈性辦理"
	meetingFootnote = "【註】相關會議與活動均依衛生福利部疾病管制署規定或實際狀況彈性辦理"
)

var reminders = []string{
	"1. 此表完成後檔名請以「單位名稱_Dream Big元大公益圓夢計畫」命名，若需附上佐證資料(佐證資料可為圖表、照片)，請妥善統整後壓縮為PDF格式，電子檔寄至專屬收件信箱 dreambig@in-harmony.com.tw",
	"2. 申請資料單封信件大小上限為10M，若有檔案較大之影音檔案，可上傳Google雲端硬碟後，將雲端連結附在E-mail信件文字中提供。",
	"3. 各項報名資料，應於114年9月1日16時00分以前繳交，以完成報名程序。",
	"4. 填答諮詢可來電本計畫協辦單位「合拍創意行銷有限公司」—Dream Big元大公益圓夢小組(02)6605-0633分機201莊小姐。",
}
