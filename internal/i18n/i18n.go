// Package i18n holds the two-language string table. The engine only picks
// fixed templates by locale and interpolates numbers into them.
package i18n

import "fmt"

// Locale selects which language reasoning and labels are rendered in.
type Locale string

const (
	EN Locale = "en"
	JA Locale = "ja"
)

// Parse validates a locale string, defaulting to English.
func Parse(s string) (Locale, error) {
	switch Locale(s) {
	case EN, JA:
		return Locale(s), nil
	case "":
		return EN, nil
	}
	return "", fmt.Errorf("unknown language %q (valid: en, ja)", s)
}

// Strings is the fixed label set for one locale.
type Strings struct {
	ReasonUrgent     string
	ReasonTired      string
	ReasonImportant  string
	ReasonBalanced   string
	FocusAction      string // fmt template taking the minute count
	BreakLabel       string
	BreakNote        string
	BufferLabel      string
	BufferNote       string
	PartialNote      string
	NoTasks          string
	NoRecommendation string
	PlanHeader       string
	PlanNote         string
}

var tables = map[Locale]Strings{
	EN: {
		ReasonUrgent:     "Deadline is approaching. This is top priority.",
		ReasonTired:      "You seem tired. This low-load task is recommended.",
		ReasonImportant:  "This is a high importance task. Let's focus.",
		ReasonBalanced:   "This is a well-balanced task to start with.",
		FocusAction:      "Focus for %d minutes.",
		BreakLabel:       "Break",
		BreakNote:        "Recharge your brain",
		BufferLabel:      "Buffer / Spare Time",
		BufferNote:       "Catch up on tasks",
		PartialNote:      "(Partial)",
		NoTasks:          "No pending tasks.",
		NoRecommendation: "Nothing to recommend right now.",
		PlanHeader:       "Your Optimized Plan",
		PlanNote:         "Includes brain breaks based on your fatigue level.",
	},
	JA: {
		ReasonUrgent:     "締め切りが迫っています。最優先で取り組みましょう。",
		ReasonTired:      "お疲れのようですので、負担の少ないこのタスクがおすすめです。",
		ReasonImportant:  "重要度が高いタスクです。集中して進めましょう。",
		ReasonBalanced:   "バランスの良いタスクです。",
		FocusAction:      "%d分、集中しましょう。",
		BreakLabel:       "休憩",
		BreakNote:        "脳を休めましょう",
		BufferLabel:      "バッファ / 予備",
		BufferNote:       "遅れを取り戻す時間",
		PartialNote:      "(一部実施)",
		NoTasks:          "未完了のタスクはありません。",
		NoRecommendation: "今おすすめできるタスクはありません。",
		PlanHeader:       "最適化されたプラン",
		PlanNote:         "疲労度に応じた休憩を含みます。",
	},
}

// T returns the string table for a locale, falling back to English.
func T(loc Locale) Strings {
	if s, ok := tables[loc]; ok {
		return s
	}
	return tables[EN]
}
