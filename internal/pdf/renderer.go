package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"digital-prescription-server/internal/models"

	"github.com/jung-kurt/gofpdf"
)

// ErrRenderFailed is returned when the PDF cannot be written out.
var ErrRenderFailed = errors.New("failed to render prescription PDF")

// Letterhead defaults used when a prescription has no clinic attached.
const (
	defaultClinicName    = "CLINIC NAME"
	defaultClinicAddress = "123 Health Street, Wellness City"
)

// Renderer lays out one-page prescription documents. The layout is
// deterministic: rendering the same prescription twice produces the same
// file at the same path, so a re-render simply overwrites.
type Renderer struct {
	OutputDir string
}

// NewRenderer creates a Renderer writing into outputDir.
func NewRenderer(outputDir string) *Renderer {
	return &Renderer{OutputDir: outputDir}
}

// FileName returns the deterministic file name for a prescription ID.
func FileName(prescriptionID string) string {
	return fmt.Sprintf("prescription-%s.pdf", prescriptionID)
}

// Render writes the prescription PDF and returns its path. The
// prescription must have Doctor (with User), Patient and medicine lines
// populated. The output directory is created if absent. On error no
// path is returned and the caller must not record one.
func (r *Renderer) Render(p *models.Prescription) (string, error) {
	if err := os.MkdirAll(r.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	outPath := filepath.Join(r.OutputDir, FileName(p.ID))

	doc := gofpdf.New("P", "pt", "Letter", "")
	doc.SetMargins(50, 50, 50)
	doc.AddPage()

	// Header: clinic letterhead centered, then a rule
	clinicName, clinicAddress := defaultClinicName, defaultClinicAddress
	if p.Clinic != nil && p.Clinic.Name != "" {
		clinicName = p.Clinic.Name
		clinicAddress = p.Clinic.Address
	}
	doc.SetFont("Helvetica", "B", 20)
	doc.SetY(50)
	doc.CellFormat(0, 24, clinicName, "", 1, "C", false, 0, "")
	doc.SetFont("Helvetica", "", 10)
	doc.CellFormat(0, 14, clinicAddress, "", 1, "C", false, 0, "")
	doc.Line(50, 100, 550, 100)

	// Doctor block (left)
	doc.SetFont("Helvetica", "", 12)
	doc.Text(50, 130, "Dr. "+p.Doctor.User.Name)
	doc.SetFont("Helvetica", "", 10)
	doc.Text(50, 145, p.Doctor.Qualification)
	doc.Text(50, 158, p.Doctor.Specialization)

	// Patient block (right, same vertical band)
	doc.SetFont("Helvetica", "", 12)
	doc.Text(300, 130, "Patient Name: "+p.Patient.Name)
	doc.SetFont("Helvetica", "", 10)
	doc.Text(300, 145, fmt.Sprintf("Age/Sex: %d / %s", p.Patient.Age, p.Patient.Gender))
	doc.Text(300, 158, "Date: "+p.Date.Format("1/2/2006"))

	doc.Line(50, 180, 550, 180)

	// Vitals band: four fixed labeled fields in a row
	y := 200.0
	doc.SetFont("Helvetica", "", 12)
	doc.Text(50, y, "Vitals:")
	doc.SetFont("Helvetica", "", 10)
	doc.Text(50, y+15, "BP: "+p.Vitals.BP)
	doc.Text(150, y+15, "Pulse: "+p.Vitals.Pulse)
	doc.Text(250, y+15, "Temp: "+p.Vitals.Temperature)
	doc.Text(350, y+15, "Weight: "+p.Vitals.Weight)

	y += 40
	doc.Line(50, y, 550, y)
	y += 20

	// Medicines section, one block per medicine in array order
	doc.SetFont("Helvetica", "", 14)
	doc.Text(50, y, "Medicines (Rx)")
	y += 20

	for i, med := range p.Medicines {
		doc.SetFont("Helvetica", "", 12)
		doc.Text(50, y, fmt.Sprintf("%d. %s (%s)", i+1, med.Name, med.Strength))
		doc.SetFont("Helvetica", "", 10)
		doc.Text(50, y+15, fmt.Sprintf("%s | %s | %s", med.Frequency, med.Duration, med.Instructions))
		y += 35
	}

	if p.Advice != "" {
		y += 20
		doc.SetFont("Helvetica", "", 12)
		doc.Text(50, y, "Advice:")
		doc.SetFont("Helvetica", "", 10)
		doc.Text(50, y+20, p.Advice)
	}

	if err := doc.OutputFileAndClose(outPath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrRenderFailed, err)
	}
	return outPath, nil
}
