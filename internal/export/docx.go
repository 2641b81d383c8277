package export

import (
	"fmt"
	"strings"

	"github.com/gingfrederik/docx"

	"github.com/sgunwal/capreports/internal/extract"
)

// WriteAnalysisDocx renders the questionnaire answers for one document as a
// Word report: a title followed by one block per question.
func WriteAnalysisDocx(path, title string, items []extract.QuestionAnswer) error {
	f := docx.NewFile()

	f.AddParagraph().AddText(title).Size(16)
	f.AddParagraph()

	for _, qa := range items {
		addLine(f, "Question ID: "+qa.QuestionID)
		addLine(f, "Question: "+qa.QuestionText)
		addLine(f, "Relevant Snippet: "+qa.Snippet)
		addLine(f, "Page Number: "+qa.PageNo)
		addLine(f, "Answer: "+qa.Answer)
		addLine(f, "Justification: "+qa.Justification)
		addLine(f, fmt.Sprintf("Score: %d", qa.Score))
		addLine(f, strings.Repeat("-", 40))
	}

	if err := f.Save(path); err != nil {
		return fmt.Errorf("docx write: %w", err)
	}
	return nil
}

func addLine(f *docx.File, text string) {
	f.AddParagraph().AddText(text)
}
