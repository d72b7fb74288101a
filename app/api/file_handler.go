package api

import (
	"io"
	"os"
	"path/filepath"

	"elanbot/app/agent"

	"github.com/gofiber/fiber/v2"
)

// FileHandler accepts an uploaded .eaf file plus an instructions form field,
// runs them through the editor and hands the model output back as a download.
// The output is whatever the model produced; it is not validated as XML.
type FileHandler struct {
	assistant *agent.Assistant
}

func NewFileHandler(assistant *agent.Assistant) *FileHandler {
	return &FileHandler{
		assistant: assistant,
	}
}

func (h *FileHandler) HandleEafFile(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return ErrBadRequest()
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	instructions := c.FormValue("instructions")

	// Same contract as pasting XML into the chat: document and instructions
	// travel as one string, the model infers the split.
	resp := h.assistant.EditDocument(c.Context(), string(data)+"\n"+instructions)

	// The upload filename is client-controlled; only its base name may pick
	// the download name, and the scratch file stays inside the temp dir.
	name := filepath.Base(fileHeader.Filename)
	output := filepath.Join(os.TempDir(), name)
	if err := os.WriteFile(output, []byte(resp), 0644); err != nil {
		return err
	}
	defer os.Remove(output)

	return c.Download(output, name)
}
