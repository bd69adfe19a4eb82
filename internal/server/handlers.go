package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clinscribe/clinscribe/internal/analysis"
	"github.com/clinscribe/clinscribe/internal/llm"
	"github.com/clinscribe/clinscribe/internal/pipeline"
	"github.com/clinscribe/clinscribe/internal/report"
)

type consultationResponse struct {
	ID             string                        `json:"id"`
	AudioFile      string                        `json:"audio_file,omitempty"`
	Transcript     string                        `json:"transcript"`
	Translation    string                        `json:"translation"`
	Analysis       analysis.ConsultationAnalysis `json:"analysis"`
	Degraded       bool                          `json:"degraded"`
	DegradedReason string                        `json:"degraded_reason,omitempty"`
	Markdown       string                        `json:"markdown"`
	Prompts        pipeline.PromptVersions       `json:"prompt_versions"`
	GeneratedAt    time.Time                     `json:"generated_at"`
}

func toResponse(result *pipeline.Result) consultationResponse {
	return consultationResponse{
		ID:             result.ID,
		AudioFile:      result.AudioFile,
		Transcript:     result.Transcript,
		Translation:    result.Translation,
		Analysis:       result.Analysis,
		Degraded:       result.Degraded,
		DegradedReason: result.DegradedReason,
		Markdown:       result.Markdown,
		Prompts:        result.Prompts,
		GeneratedAt:    result.GeneratedAt,
	}
}

func (s *implServer) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// handleCreateConsultation accepts a multipart audio upload, runs the
// analysis chain synchronously and returns the full result.
func (s *implServer) handleCreateConsultation(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{
				"error": fmt.Sprintf("upload exceeds the %dMB limit", s.cfg.Server.MaxUploadMB),
			})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart field 'audio' is required"})
		return
	}

	if !pipeline.IsSupportedAudio(fileHeader.Filename) {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{
			"error": fmt.Sprintf("unsupported audio format %q, expected one of %s",
				filepath.Ext(fileHeader.Filename), strings.Join(pipeline.SupportedExtensions, ", ")),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open upload"})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read upload"})
		return
	}

	result, err := s.pipeline.Analyze(c.Request.Context(), audio, strings.ToLower(filepath.Ext(fileHeader.Filename)))
	if err != nil {
		status := http.StatusBadGateway
		var timeoutErr *llm.TimeoutError
		if errors.As(err, &timeoutErr) {
			status = http.StatusGatewayTimeout
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	result.AudioFile = fileHeader.Filename

	s.store.Put(result)

	c.JSON(http.StatusCreated, toResponse(result))
}

func (s *implServer) handleGetConsultation(c *gin.Context) {
	result, ok := s.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "consultation not found"})
		return
	}
	c.JSON(http.StatusOK, toResponse(result))
}

// handleExportConsultation streams one stored result in the requested
// document format.
func (s *implServer) handleExportConsultation(c *gin.Context) {
	result, ok := s.store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "consultation not found"})
		return
	}

	switch format := c.Param("format"); format {
	case "markdown":
		attachment(c, result.ID+".md")
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(result.Markdown))
	case "pdf":
		data, err := report.RenderPDF(report.ParseBlocks(result.Markdown))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		attachment(c, result.ID+".pdf")
		c.Data(http.StatusOK, "application/pdf", data)
	case "docx":
		data, err := renderDOCXBytes(result.Markdown, result.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		attachment(c, result.ID+".docx")
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown export format %q", format)})
	}
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
}

// renderDOCXBytes goes through a temp file because the docx writer only
// saves to paths.
func renderDOCXBytes(markdown, id string) ([]byte, error) {
	tmpPath := filepath.Join(os.TempDir(), "consult-"+id+".docx")
	defer os.Remove(tmpPath)

	if err := report.WriteDOCX(report.ParseBlocks(markdown), tmpPath); err != nil {
		return nil, err
	}
	return os.ReadFile(tmpPath)
}
