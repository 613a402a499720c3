package reports

import (
	"context"
	"fmt"

	"github.com/deuslabs/pitchboard/internal/application"
	domain "github.com/deuslabs/pitchboard/internal/domain/analysis"
	"github.com/deuslabs/pitchboard/internal/domain/projects"
)

// TemplateSource derives a report by interpolating the project's own
// name and context into a long-form narrative transcript and a fixed
// analysis structure. This is the stand-in backend used for
// registry-created projects.
type TemplateSource struct {
	Clock application.Clock
}

func NewTemplateSource(clock application.Clock) *TemplateSource {
	if clock == nil {
		clock = application.SystemClock{}
	}
	return &TemplateSource{Clock: clock}
}

var _ domain.Source = (*TemplateSource)(nil)

func (s *TemplateSource) Fetch(ctx context.Context, p *projects.Project) (*domain.Report, error) {
	now := s.Clock.Now()
	return &domain.Report{
		ID:          p.ID,
		ProjectName: p.Name,
		FileKey:     p.FileKey,
		Context:     p.Context,
		Transcript: domain.Transcript{
			Text:                 fmt.Sprintf(transcriptTemplate, p.Name),
			DurationMilliseconds: 180000, // 3 minutes
			Locale:               "en-US",
			Confidence:           0.873,
		},
		KeyPoints: []string{
			"Strong opening with compelling statistics that captured audience attention",
			"Clear value proposition presentation with concrete examples",
			"Interactive customer engagement techniques including Q&A sessions",
			"Effective use of storytelling to illustrate product benefits",
			"Room for improvement in closing techniques and call-to-action clarity",
			"Good pace and energy throughout the presentation",
			fmt.Sprintf("Simulated AI analysis based on context '%s'", p.Context),
		},
		Status:    nonEmptyStatus(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: now,
		Analysis: domain.Breakdown{
			OverallAssessment: domain.OverallAssessment{
				Score:              0.82,
				KeyInsightsSummary: "The presentation demonstrates strong storytelling abilities and effective use of data to support key points. The speaker shows good energy and engagement with the audience throughout.",
				AreasForImproving: []string{
					"Stronger call-to-action in closing",
					"More interactive elements throughout",
					"Better transitions between sections",
					"Address potential objections proactively",
				},
			},
			PresentationBreakdown: domain.PresentationBreakdown{
				StorytellingCoherence: domain.ScoredDimension{
					Score:      0.85,
					Assessment: "Excellent narrative flow with clear beginning, middle, and end. Good use of specific examples like the TechCorp Industries case study.",
					Suggestions: []string{
						"Add more transitional phrases between major sections",
						"Consider using a recurring theme or metaphor",
						"Strengthen the connection between opening statistics and conclusion",
					},
				},
				ListenerMotivation: domain.ScoredDimension{
					Score:      0.78,
					Assessment: "Strong motivational content with concrete results and forward-looking vision. Could benefit from more audience interaction.",
					Suggestions: []string{
						"Include more rhetorical questions to engage audience",
						"Add pauses for audience reflection",
						"Consider interactive polls or demonstrations",
					},
				},
				ToneOfVoiceAssessment: domain.ToneOfVoice{
					FormalVsCasual:             0.3,
					SeriousVsFunny:             0.2,
					RespectfulVsIrreverent:     0.1,
					MatterOfFactVsEnthusiastic: 0.7,
				},
				OverusedElements: domain.OverusedElements{
					Keywords: []domain.KeywordCount{
						{Word: "customer", Count: 12},
						{Word: "success", Count: 8},
						{Word: "growth", Count: 6},
						{Word: "challenges", Count: 5},
					},
					Expressions: []domain.ExpressionCount{
						{Expression: "let me", Count: 4},
						{Expression: "what I want to share", Count: 2},
						{Expression: "moving forward", Count: 2},
					},
					Suggestions: []string{
						"Vary vocabulary when referring to customers (clients, partners, businesses)",
						"Use synonyms for \"success\" (achievement, results, outcomes)",
						"Replace repetitive phrase starters with more diverse openings",
					},
				},
				ClosingStatementEngagement: domain.ScoredDimension{
					Score:      0.65,
					Assessment: "The closing asks for questions but lacks a strong call-to-action or memorable final statement.",
					Suggestions: []string{
						"End with a specific call-to-action",
						"Summarize key takeaways in a memorable way",
						"Leave audience with a compelling thought or challenge",
					},
				},
			},
			EmotionalAnalysis: domain.EmotionalAnalysis{
				IdentifiedEmotions: []domain.IdentifiedEmotion{
					{Emotion: "Confidence", Quotes: fmt.Sprintf("I'm excited to share our %s and strategies that have led to our success", p.Name)},
					{Emotion: "Pride", Quotes: "However, how we responded to these challenges is what I'm most proud of"},
					{Emotion: "Optimism", Quotes: "Looking ahead to Q3, I'm excited about the opportunities in front of us"},
					{Emotion: "Honesty", Quotes: "But let me be honest with you - we're not perfect"},
				},
				OverallEmotionalArc: "The presentation follows a positive emotional journey, starting with confidence and excitement, acknowledging challenges with honesty, and ending on an optimistic note about the future.",
			},
		},
	}, nil
}

func nonEmptyStatus(st projects.Status) projects.Status {
	if st == "" {
		return projects.StatusCompleted
	}
	return st
}

const transcriptTemplate = `Good morning everyone, thank you for joining us today. I'm excited to share our %s and strategies that have led to our success.

Let me start with some impressive numbers. This quarter, we've seen a 35%% increase in customer acquisition compared to Q1, with our enterprise segment showing particularly strong growth at 42%%. These aren't just numbers on a spreadsheet - they represent real businesses that have chosen to trust us with their most critical operations.

What's driving this success? I believe it comes down to three key factors that I want to share with you today. First, our customer-centric approach. We don't just sell products; we solve problems. When we engage with potential clients, we take the time to understand their unique challenges and pain points.

For example, last month we worked with TechCorp Industries, a mid-size manufacturing company that was struggling with inventory management. Instead of pushing our standard solution, we listened. We learned that their main challenge wasn't just tracking inventory - it was predicting demand fluctuations during seasonal peaks.

Our team collaborated with their operations manager to develop a customized approach that integrated our core platform with their existing ERP system. The result? A 28%% reduction in excess inventory and a 15%% improvement in order fulfillment time. But more importantly, we earned a partner, not just a customer.

This brings me to our second key factor: the power of partnership. We don't see ourselves as vendors; we see ourselves as extensions of our clients' teams. This mindset shift has transformed how we approach every interaction, from initial discovery calls to post-implementation support.

Speaking of support, our customer success team has maintained a 98%% satisfaction rating this quarter, with an average response time of under 2 hours for critical issues. This level of service isn't just about having good people - though we certainly do - it's about having systems and processes that prioritize customer success above everything else.

The third factor is innovation. Technology moves fast, and so do customer expectations. We've invested heavily in R&D this quarter, launching three major feature updates based directly on customer feedback. Our new analytics dashboard, for instance, was requested by 78%% of our enterprise clients, and it's already being used by over 10,000 users daily.

But let me be honest with you - we're not perfect. We've had challenges too. Our initial rollout of the mobile app had some performance issues that frustrated several key accounts. However, how we responded to these challenges is what I'm most proud of. Within 48 hours, our engineering team had identified and fixed the core issues. We personally called every affected client to apologize and provide a timeline for resolution.

That experience taught us something valuable: transparency builds trust. Our clients don't expect us to be perfect, but they do expect us to be honest, responsive, and committed to making things right when issues arise.

Looking ahead to Q3, I'm excited about the opportunities in front of us. We have a pipeline of qualified prospects that's 60%% larger than this time last quarter. We're expanding into two new vertical markets, and we're on track to launch our most requested feature - real-time collaboration tools - by the end of next month.

But success in Q3 won't just happen automatically. It will require the same commitment to excellence, the same customer-first mindset, and the same willingness to innovate that got us here. I'm confident that with this team and this approach, Q3 will be even better than Q2.

Are there any questions about our performance this quarter or our plans moving forward?`
