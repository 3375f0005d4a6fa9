package handler

import (
	"math"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
	"time"

	deliverycontext "internova/internal/delivery/context"
	"internova/internal/delivery/http/response"
	"internova/internal/domain/entity"
	domainerrors "internova/internal/domain/errors"
	"internova/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	formUniversityID = "universityId"
	formDepartment   = "department"
	formGPA          = "gpa"
	formSkills       = "skills"
	formResume       = "resume"

	uploadSuccessMessage = "Upload Successful"
)

type studentProfileResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"userId"`
	UniversityID string    `json:"universityId"`
	Department   string    `json:"department"`
	GPA          float64   `json:"gpa"`
	Skills       string    `json:"skills"`
	ResumeURL    string    `json:"resumeUrl"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type upsertProfileResponse struct {
	Message   string                  `json:"message"`
	ResumeURL string                  `json:"resumeUrl"`
	Profile   *studentProfileResponse `json:"profile"`
}

func toStudentProfileResponse(p *entity.StudentProfile) *studentProfileResponse {
	return &studentProfileResponse{
		ID:           p.ID,
		UserID:       p.AccountID,
		UniversityID: p.UniversityID,
		Department:   p.Department,
		GPA:          p.GPA,
		Skills:       p.Skills,
		ResumeURL:    p.ResumeURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// StudentHandler serves the authenticated student's own profile.
type StudentHandler struct {
	uc usecase.ProfileUsecase
}

// NewStudentHandler is the constructor for StudentHandler, injected by Fx.
func NewStudentHandler(uc usecase.ProfileUsecase) *StudentHandler {
	return &StudentHandler{uc: uc}
}

// UpsertProfile handles PUT /student/profile. The multipart form carries the
// profile fields and the resume file; the whole profile is replaced.
func (h *StudentHandler) UpsertProfile(c echo.Context) error {
	accountID, err := accountIDFromClaims(c)
	if err != nil {
		return err
	}

	input := &usecase.UpsertStudentProfileInput{
		UniversityID: c.FormValue(formUniversityID),
		Department:   c.FormValue(formDepartment),
		GPA:          parseGPA(c.FormValue(formGPA)),
		Skills:       c.FormValue(formSkills),
	}

	fileHeader, err := c.FormFile(formResume)
	switch {
	case errors.Is(err, http.ErrMissingFile):
		// Left nil; the use case reports the missing resume.
	case err != nil:
		return response.BindingError(c, "INVALID_INPUT", "Invalid multipart form")
	default:
		file, err := fileHeader.Open()
		if err != nil {
			return errors.Wrap(err, "failed to open uploaded resume")
		}
		defer closeQuietly(file)

		input.Resume = &usecase.ResumeFile{
			Reader:      file,
			FileName:    fileHeader.Filename,
			ContentType: fileHeader.Header.Get(echo.HeaderContentType),
			Size:        fileHeader.Size,
		}
	}

	output, err := h.uc.UpsertStudentProfile(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, upsertProfileResponse{
		Message:   uploadSuccessMessage,
		ResumeURL: output.ResumeURL,
		Profile:   toStudentProfileResponse(output.Profile),
	}, uploadSuccessMessage)
}

// GetProfile handles GET /student/profile.
func (h *StudentHandler) GetProfile(c echo.Context) error {
	accountID, err := accountIDFromClaims(c)
	if err != nil {
		return err
	}

	profile, err := h.uc.GetStudentProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toStudentProfileResponse(profile), "Profile retrieved successfully")
}

func accountIDFromClaims(c echo.Context) (int64, error) {
	claims, ok := deliverycontext.GetClaims(c)
	if !ok {
		return 0, domainerrors.ErrInvalidToken
	}

	accountID, err := claims.AccountID()
	if err != nil {
		return 0, domainerrors.ErrInvalidToken
	}

	return accountID, nil
}

// parseGPA yields NaN for missing or non-numeric input so the use case
// rejects it as out of range after the fields it checks first.
func parseGPA(text string) float64 {
	gpa, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return math.NaN()
	}

	return gpa
}

func closeQuietly(f multipart.File) {
	_ = f.Close()
}
