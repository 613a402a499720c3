package reports

import (
	"context"
	"strings"
	"time"

	"github.com/deuslabs/pitchboard/internal/application"
	domain "github.com/deuslabs/pitchboard/internal/domain/analysis"
	"github.com/deuslabs/pitchboard/internal/domain/projects"
)

// CannedSource serves one of two fixed reports, chosen by a
// deterministic rule over the project id. Development stand-in for a
// real analytics backend; the rule itself is not part of the contract.
type CannedSource struct {
	Clock application.Clock
}

func NewCannedSource(clock application.Clock) *CannedSource {
	if clock == nil {
		clock = application.SystemClock{}
	}
	return &CannedSource{Clock: clock}
}

var _ domain.Source = (*CannedSource)(nil)

func (s *CannedSource) Fetch(ctx context.Context, p *projects.Project) (*domain.Report, error) {
	var report domain.Report
	if pickGood(string(p.ID)) {
		report = goodReport()
	} else {
		report = badReport()
	}
	// restamp identity so the report matches the requested project
	report.ID = p.ID
	report.UpdatedAt = s.Clock.Now()
	report.Status = projects.StatusCompleted
	return &report, nil
}

// pickGood: ids containing "good" or of even length get the stronger
// canned report.
func pickGood(id string) bool {
	return strings.Contains(strings.ToLower(id), "good") || len(id)%2 == 0
}

func goodReport() domain.Report {
	return domain.Report{
		ProjectName: "Jennie Good",
		FileKey:     "1748614755132_First Take - Jennie Bad.mp3",
		Context:     "test context",
		CreatedAt:   time.Date(2025, 5, 30, 14, 23, 16, 629000000, time.UTC),
		Transcript: domain.Transcript{
			Text:                 goodTranscript,
			DurationMilliseconds: 220525,
			Locale:               "en-US",
			Confidence:           0.9181230499999999,
		},
		KeyPoints: []string{
			"Simulated AI analysis based on context 'test context': The transcript mentions key performance indicators and action items for the next sprint.",
		},
		Analysis: domain.Breakdown{
			OverallAssessment: domain.OverallAssessment{
				Score:              0.65,
				KeyInsightsSummary: "The presentation communicates a passionate mission and introduces the company's services, but suffers from disfluencies, repetition, and lack of structure.",
				AreasForImproving: []string{
					"Improve fluency and reduce filler words and hesitations.",
					"Structure the message with clearer sections (e.g., intro, mission, services).",
					"Practice a more confident and concise delivery to reinforce credibility.",
				},
			},
			PresentationBreakdown: domain.PresentationBreakdown{
				StorytellingCoherence: domain.ScoredDimension{
					Score:      0.6,
					Assessment: "The message is scattered, with repetition and interruptions affecting clarity. The narrative lacks a smooth, logical progression.",
					Suggestions: []string{
						"Create a structured outline before speaking.",
						"Use transitions to guide listeners through the story.",
						"Rehearse with time limits to improve delivery flow.",
					},
				},
				ListenerMotivation: domain.ScoredDimension{
					Score:      0.7,
					Assessment: "The enthusiasm and ethical mission could inspire listeners, but the lack of polish may reduce the perceived authority.",
					Suggestions: []string{
						"Deliver key ideas with stronger emphasis and clarity.",
						"Reduce distractions caused by restatements or forgotten words.",
						"Add a strong, direct call-to-action at the end.",
					},
				},
				ToneOfVoiceAssessment: domain.ToneOfVoice{
					FormalVsCasual:             0.75,
					SeriousVsFunny:             0.2,
					RespectfulVsIrreverent:     0.1,
					MatterOfFactVsEnthusiastic: 0.85,
				},
				OverusedElements: domain.OverusedElements{
					Keywords: []domain.KeywordCount{
						{Word: "really", Count: 8},
						{Word: "AI", Count: 5},
						{Word: "mission", Count: 4},
						{Word: "strategy", Count: 3},
					},
					Expressions: []domain.ExpressionCount{
						{Expression: "we are", Count: 5},
						{Expression: "how do I say", Count: 2},
						{Expression: "let me tell you", Count: 1},
					},
					Suggestions: []string{
						"Limit the use of 'really' to retain impact.",
						"Vary the language around key ideas like 'AI' and 'strategy' to avoid sounding repetitive.",
						"Avoid self-referential expressions like 'how do I say' which interrupt the flow.",
					},
				},
				ClosingStatementEngagement: domain.ScoredDimension{
					Score:      0.5,
					Assessment: "The closing attempts to summarize a service offering but lacks a strong concluding message or call to action.",
					Suggestions: []string{
						"Summarize the key value proposition more clearly.",
						"End with a confident invitation to engage or learn more.",
						"Avoid trailing off with uncertain phrasing.",
					},
				},
			},
			EmotionalAnalysis: domain.EmotionalAnalysis{
				IdentifiedEmotions: []domain.IdentifiedEmotion{
					{
						Emotion: "enthusiasm",
						Quotes:  "Hello really great to connect. Thank you so much for your time. We are humanity centered AI... They are really smart and very, very, very, very useful and... really, really ethical.",
					},
					{
						Emotion: "confusion/uncertainty",
						Quotes:  "How do I say **** I forgot the word... I'm not sure how to say that...",
					},
					{
						Emotion: "pride",
						Quotes:  "We are a team of data scientists and engineers, designers and people who strategy strategy... We can even build a prototype in 12 weeks and it's a really, really great way to explore what AI can actually do...",
					},
				},
				OverallEmotionalArc: "The presentation starts with positive energy and enthusiasm, dips into uncertainty during unscripted segments, and attempts to recover with pride in the company's capabilities.",
			},
		},
	}
}

func badReport() domain.Report {
	return domain.Report{
		ProjectName: "Jennie Bad",
		FileKey:     "1748614834652_First Take - Jennie Good.mp3",
		Context:     "test context",
		CreatedAt:   time.Date(2025, 5, 30, 14, 38, 49, 672000000, time.UTC),
		Transcript: domain.Transcript{
			Text:                 badTranscript,
			DurationMilliseconds: 167732,
			Locale:               "en-US",
			Confidence:           0.9302947899999998,
		},
		KeyPoints: []string{
			"Simulated AI analysis based on context 'test context': The transcript mentions key performance indicators and action items for the next sprint.",
		},
		Analysis: domain.Breakdown{
			OverallAssessment: domain.OverallAssessment{
				Score:              0.82,
				KeyInsightsSummary: "The presentation effectively introduced the company and conveyed its mission with clarity and enthusiasm, though it could benefit from smoother structure and a more impactful close.",
				AreasForImproving: []string{
					"Refine the structure to avoid redundancy and improve narrative flow.",
					"Make the closing statement more memorable with a clear call to action.",
					"Reduce filler phrases to improve speech fluency and authority.",
				},
			},
			PresentationBreakdown: domain.PresentationBreakdown{
				StorytellingCoherence: domain.ScoredDimension{
					Score:      0.76,
					Assessment: "The storytelling successfully communicates the company's mission, team composition, and areas of expertise, but has minor disruptions in pacing and coherence due to filler words and a couple of repeated phrases.",
					Suggestions: []string{
						"Structure the content more clearly into sections (e.g., intro, mission, offerings, closing).",
						"Reduce informal repetitions and stammering (e.g., 'how I how I I').",
						"Use transitions to guide listeners through sections.",
					},
				},
				ListenerMotivation: domain.ScoredDimension{
					Score:      0.79,
					Assessment: "The speaker conveys a strong sense of purpose and values, which is motivating, though the delivery could use a more energized or conclusive finale.",
					Suggestions: []string{
						"End with a compelling call to action or a visionary statement.",
						"Include an example or success story to reinforce impact.",
						"Use more direct language when inviting listeners to engage.",
					},
				},
				ToneOfVoiceAssessment: domain.ToneOfVoice{
					FormalVsCasual:             0.65,
					SeriousVsFunny:             0.15,
					RespectfulVsIrreverent:     0.1,
					MatterOfFactVsEnthusiastic: 0.75,
				},
				OverusedElements: domain.OverusedElements{
					Keywords: []domain.KeywordCount{
						{Word: "AI", Count: 9},
						{Word: "data", Count: 6},
						{Word: "build", Count: 4},
					},
					Expressions: []domain.ExpressionCount{
						{Expression: "we are", Count: 5},
						{Expression: "for example", Count: 2},
						{Expression: "what we do", Count: 2},
					},
					Suggestions: []string{
						"Use synonyms or restructure sentences to avoid repetition.",
						"Be mindful of overusing self-referential phrases like 'we are' to maintain listener interest.",
						"Balance technical terms with illustrative examples or metaphors.",
					},
				},
				ClosingStatementEngagement: domain.ScoredDimension{
					Score:      0.6,
					Assessment: "The closing is polite and expresses willingness to help, but lacks a strong, memorable hook or direction for the listener.",
					Suggestions: []string{
						"Craft a more specific invitation (e.g., 'Let's schedule a discovery call').",
						"End with a confident statement about the impact the company can have.",
						"Use a memorable phrase or tagline to leave a lasting impression.",
					},
				},
			},
			EmotionalAnalysis: domain.EmotionalAnalysis{
				IdentifiedEmotions: []domain.IdentifiedEmotion{
					{
						Emotion: "enthusiasm",
						Quotes:  "Let me tell you a little bit more about Deus, who we are and what we do. Our mission is simple but ambitious. Think of tools that scan influencer videos for ad compliance...",
					},
					{
						Emotion: "pride",
						Quotes:  "We are a team of data scientists, engineers, designers and strategists based in Amsterdam, Porto and A Coruna. We helped Shell design a global data mesh with Signal.",
					},
					{
						Emotion: "empathy",
						Quotes:  "We want to unlock the potential of AI for the benefit of humans and humanity... Because we believe AI should be in service of people and not the other way around.",
					},
				},
				OverallEmotionalArc: "The presentation starts with excitement and gradually deepens into values-driven pride and purpose. It maintains a warm, enthusiastic tone throughout, though it slightly flattens toward the end.",
			},
		},
	}
}

const goodTranscript = `Hello really great to connect. Thank you so much for your time. Let me tell you a little bit about our company about Deus. Who we are and what we actually what we do, what kind of services we provide. We are we are called Deus and we are humanity centered a I we are a team of data scionists and engineeringers, designers and people who strategy strategy. Strategists based in Amsterdam, Porto and a a Coru. OK, Yep, Yep, exactly. So we are our mission. Yes, our mission, our mission is really simple but also ambitious. So how can I explain that? Yes, our mission is we want to unlock the potential of a I for for the for the best of the humans and and the whole humanity. We want to by building building what we call machines of assistance. And and we provide these IE solutions that truly support people, people, instead of replacing them. And what sets us apart is our inter interdisciplinary, interdisciplinary approach. And we bring them together. What we do bring together is how do I say **** I forgot the word of course data and then also design and engine engineering and that strategic thinking. That's also the strategic thinking. That's what we do to deliver a I powered products and services. They are really smart. They're really smart and very, very, very, very useful and. Really, really ethical, really ethical and scalable of course as well because that's also very, very important. So yes, there we focus then on the three, three areas, three main areas. So the first one is IE and innovation strategy, innovation strategy, yes. And we help to organizations explore and fast track. I E opportunities from ideation to actual working proof of concepts. That could be a leadership workshop or we can dive very deep like into like potential use case. I'm not sure how to say that we can even build like a prototype. We can even build a prototype in 12 weeks and it's a really, really great way to explore what AI can actually do for a business.`

const badTranscript = `Hey, hello, nice to connect. Let me tell you a little bit more about Deus, who we are and what we do. We are called Deus, Humanity Centered AI. We are a team of data scientists, engineers, designers and strategists based in Amsterdam, Porto and A Coruna. Our mission is simple but ambitious. We want to unlock the potential of AI for the benefit of humans and humanity by building what we call machines of assistance. These are the AI solutions that truly support people instead of replacing them. What sets us apart is our interdisciplinary approach. We bring together data, design, engineering, and strategic thinking to deliver AI-powered products and services that are not just smart, but also useful, ethical, and scalable. We focus on three main areas, AI and innovation strategy, Here we help organizations explore and fast track AI opportunities from ideation to actual working proof of concepts. That could be a leadership workshop, a dive, a deep dive into potential use cases, or even building a prototype in 12 weeks. It's a great way to explore what a I can really do for our business. The second one is data architecture and platforms. We design and build scalable data infrastructures. On platforms like Azure and a WS that ensure data is accessible, secure and actionable. For example, we helped Shell design a global data mesh with Signal. We built a lake house that helps reduce emissions in the aviation and shipping industries. Then the third is data and AI and AI powered applications. We built real world. Applications using techniques like NLP, computer vision and large language models. Think of tools that scan influencer videos for ad compliance or a I that enriches metadata for national libraries. On top of that, we're also involved in research around ethical and transparent A I. We sponsor academic research and partner with nonprofits and social innovators. Because we believe a I should be in service of people and not the other way around. And whether we're working with a big tech partner or mentoring students, everything we do is grounded in our core values, integrity, curiosity, creation and collaboration. If you're exploring now how I how I I could bring value to your business or you're struggling to scale data initiatives, this is exactly what we do. We'd love to see how we can help. Thank you for your time.`
