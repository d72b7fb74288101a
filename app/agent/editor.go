package agent

import (
	"context"
	"fmt"

	"elanbot/model"
)

// EditDocument sends the raw message, which carries both the EAF XML and the
// embedded editing instructions, through a single model round trip and returns
// the model output verbatim. No structural validation happens on either side;
// the worked example in the prompt is what teaches the model where the
// document ends and the instructions begin. Never returns an error to the
// caller: any failure degrades to a fixed apology.
func (a *Assistant) EditDocument(ctx context.Context, rawInput string) string {
	messages := []model.ChatMessage{
		{Role: "system", Content: editorSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(editorPromptTemplate, rawInput)},
		{Role: "assistant", Content: editorPrefix},
	}

	a.logPromptSize("edit", messages)

	// More permissive sampling than the answerer, no output cap.
	output, err := a.llm.Complete(ctx, messages, 0.7, 0)
	if err != nil {
		a.logger.Error("error in eaf file modification", "error", err.Error())
		return FallbackEdit
	}
	return output
}
