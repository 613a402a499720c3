package analysis

import (
	"time"

	"github.com/deuslabs/pitchboard/internal/domain/projects"
)

// Report is the full presentation-analysis result for one project.
// The wire shape matches the consumer contract: camelCase at the top
// level, snake_case inside the analysis subtree.
type Report struct {
	ID          projects.ID     `json:"id"`
	ProjectName string          `json:"projectName"`
	FileKey     string          `json:"fileKey"`
	Context     string          `json:"context"`
	Transcript  Transcript      `json:"transcript"`
	KeyPoints   []string        `json:"keyPoints"`
	Status      projects.Status `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Analysis    Breakdown       `json:"analysis"`
}

type Transcript struct {
	Text                 string  `json:"text"`
	DurationMilliseconds int64   `json:"durationMilliseconds"`
	Locale               string  `json:"locale"`
	Confidence           float64 `json:"confidence"` // 0..1
}

type Breakdown struct {
	OverallAssessment     OverallAssessment     `json:"overall_assessment"`
	PresentationBreakdown PresentationBreakdown `json:"presentation_breakdown"`
	EmotionalAnalysis     EmotionalAnalysis     `json:"emotional_analysis"`
}

type OverallAssessment struct {
	Score              float64  `json:"score"` // 0..1
	KeyInsightsSummary string   `json:"key_insights_summary"`
	AreasForImproving  []string `json:"areas_for_improving"`
}

type PresentationBreakdown struct {
	StorytellingCoherence      ScoredDimension  `json:"storytelling_coherence"`
	ListenerMotivation         ScoredDimension  `json:"listener_motivation"`
	ToneOfVoiceAssessment      ToneOfVoice      `json:"tone_of_voice_assessment"`
	OverusedElements           OverusedElements `json:"overused_elements"`
	ClosingStatementEngagement ScoredDimension  `json:"closing_statement_engagement"`
}

type ScoredDimension struct {
	Score       float64  `json:"score"` // 0..1
	Assessment  string   `json:"assessment"`
	Suggestions []string `json:"suggestions"`
}

// ToneOfVoice is a 4-axis tone vector. Each axis runs 0..1 toward the
// second-named pole.
type ToneOfVoice struct {
	FormalVsCasual             float64 `json:"formal_vs_casual"`
	SeriousVsFunny             float64 `json:"serious_vs_funny"`
	RespectfulVsIrreverent     float64 `json:"respectful_vs_irreverent"`
	MatterOfFactVsEnthusiastic float64 `json:"matter_of_fact_vs_enthusiastic"`
}

type OverusedElements struct {
	Keywords    []KeywordCount    `json:"keywords"`
	Expressions []ExpressionCount `json:"expressions"`
	Suggestions []string          `json:"suggestions"`
}

type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type ExpressionCount struct {
	Expression string `json:"expression"`
	Count      int    `json:"count"`
}

type EmotionalAnalysis struct {
	IdentifiedEmotions  []IdentifiedEmotion `json:"identified_emotions"`
	OverallEmotionalArc string              `json:"overall_emotional_arc"`
}

type IdentifiedEmotion struct {
	Emotion string `json:"emotion"`
	Quotes  string `json:"quotes"`
}
