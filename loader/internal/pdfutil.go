package internal

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// RemoveHeaderFooterCrop trims the running header and footer off every page.
// top and bottom are given in points (1 pt = 1/72 inch).
func RemoveHeaderFooterCrop(inputPath, outputPath string, top, bottom float64) error {
	conf := api.LoadConfiguration()

	pages := []string{"1-"}

	cropStr := fmt.Sprintf(
		"%.2f 0 %.2f 0",
		top,
		bottom,
	)

	box, err := model.ParseBox(cropStr, types.POINTS)
	if err != nil {
		return fmt.Errorf("failed to parse crop box: %w", err)
	}

	if err := api.CropFile(inputPath, outputPath, pages, box, conf); err != nil {
		return fmt.Errorf("failed to crop PDF: %w", err)
	}

	return nil
}
