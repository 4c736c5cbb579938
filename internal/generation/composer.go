package generation

import (
	"strings"
	"text/template"

	"github.com/phrazzld/sahayak-api/internal/domain"
)

// Params are the user-supplied values substituted into a prompt template.
// Blank fields are substituted as empty strings.
type Params struct {
	Prompt    string
	Language  string
	Grade     string
	Subject   string
	Challenge string
}

// ParamsFromRequest extracts the template parameters from a request.
func ParamsFromRequest(req domain.GenerationRequest) Params {
	return Params{
		Prompt:    req.Prompt,
		Language:  req.Language,
		Grade:     req.Grade,
		Subject:   req.Subject,
		Challenge: req.Challenge,
	}
}

const storyTemplate = `Create a culturally relevant story for Indian children in {{.Language}}.
Story request: {{.Prompt}}

Please include:
- Simple, engaging language appropriate for children
- Indian cultural context and values
- A clear moral or lesson
- Use emojis to make it visually appealing
- Keep it between 150-300 words`

const qaTemplate = `Answer this child's question in {{.Language}} using simple, easy-to-understand language.
Question: {{.Prompt}}

Please provide:
- A simple explanation suitable for children aged 6-12
- Use analogies and examples from everyday Indian life
- Include emojis to make it engaging
- Keep the explanation under 200 words
- Use a warm, encouraging tone`

const worksheetTemplate = `Create a worksheet for Grade {{.Grade}} students on the topic: {{.Prompt}}

Please include:
- 5-7 questions appropriate for Grade {{.Grade}}
- Different question types (fill-in-blanks, short answers, simple problems)
- Use simple Hindi/English as appropriate
- Format it clearly for printing
- Include answer key at the end`

const lessonTemplate = `Create a lesson plan for Grade {{.Grade}} students on the topic: {{.Prompt}}

Please include:
- Learning objectives
- Materials needed (low-cost options)
- Step-by-step teaching activities
- Assessment methods
- Cultural relevance for Indian classrooms
- Duration: 45 minutes`

const visualTemplate = `Create a text-based visual aid description for Grade {{.Grade}} students on: {{.Prompt}}

Please provide:
- Detailed description of visual elements
- Simple diagrams or charts (described in text)
- Color suggestions and layout
- How to create with basic materials
- Educational purpose of each element`

const tipsTemplate = `Generate personalized teaching tips for an Indian teacher facing specific challenges.

Subject: {{.Subject}}
Grade Level: {{.Grade}}
Challenge: {{.Challenge}}
{{- if .Prompt}}
Additional context: {{.Prompt}}
{{- end}}

Please provide:
- 5-7 practical, actionable teaching tips
- Solutions specific to Indian classroom context
- Low-cost or no-cost strategies
- Cultural sensitivity and local examples
- Tips in both Hindi and English where appropriate
- Real classroom scenarios and examples
- Easy-to-implement strategies

Format the response with clear headings, bullet points, and practical examples.`

var templates = map[domain.ContentType]*template.Template{
	domain.ContentTypeStory:     mustParse(domain.ContentTypeStory, storyTemplate),
	domain.ContentTypeQA:        mustParse(domain.ContentTypeQA, qaTemplate),
	domain.ContentTypeWorksheet: mustParse(domain.ContentTypeWorksheet, worksheetTemplate),
	domain.ContentTypeLesson:    mustParse(domain.ContentTypeLesson, lessonTemplate),
	domain.ContentTypeVisual:    mustParse(domain.ContentTypeVisual, visualTemplate),
	domain.ContentTypeTips:      mustParse(domain.ContentTypeTips, tipsTemplate),
}

func mustParse(ct domain.ContentType, text string) *template.Template {
	return template.Must(template.New(string(ct)).Parse(text))
}

// Compose builds the instruction string sent to the language model for the
// given content type. Fields are interpolated as-is: nothing is escaped or
// validated. An unrecognised content type yields params.Prompt unchanged.
func Compose(contentType domain.ContentType, params Params) string {
	tmpl, ok := templates[contentType]
	if !ok {
		return params.Prompt
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, params); err != nil {
		// Templates only reference string fields of Params.
		return params.Prompt
	}
	return sb.String()
}

// ComposeRequest is Compose applied to a full request.
func ComposeRequest(req domain.GenerationRequest) string {
	return Compose(req.Type, ParamsFromRequest(req))
}

// ComposeImagePrompt builds the prompt for an educational illustration.
// Without a grade the audience is "students"; without a subject the subject
// clause is left blank.
func ComposeImagePrompt(params Params) string {
	audience := "students"
	if params.Grade != "" {
		audience = "Grade " + params.Grade
	}
	subject := ""
	if params.Subject != "" {
		subject = "in " + params.Subject
	}
	return "Educational illustration for " + audience + " " + subject + ": " + params.Prompt +
		". Make it colorful, engaging, and suitable for learning. Include clear details and educational elements."
}
