package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"clinicapi/internal/config"
	"clinicapi/internal/model"
	"clinicapi/internal/service"
)

// Dependencies groups everything the HTTP layer needs.
// DB is nil when the database backend is disabled; Gatherer is nil when metrics are not exposed.
type Dependencies struct {
	DB         *sql.DB
	Features   config.Features
	Gatherer   prometheus.Gatherer
	Patients   service.PatientService
	Files      service.FileService
	Treatments service.TreatmentService
	Diagnosis  service.DiagnosisService
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, deps Dependencies) {
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())
	app.Get("/features", GetFeatures(deps.Features))
	if deps.Gatherer != nil {
		app.Get("/metrics", Metrics(deps.Gatherer))
	}

	patients := app.Group("/patients")
	patients.Get("/", ListPatients(deps.Patients))
	patients.Post("/", AddPatient(deps.Patients))
	patients.Get("/:id", GetPatient(deps.Patients))
	patients.Get("/:id/files", ListFiles(deps.Files))
	patients.Post("/:id/files", AddFile(deps.Files))
	patients.Get("/:id/treatments", ListTreatments(deps.Treatments))
	patients.Post("/:id/treatments", AddTreatment(deps.Treatments))
	patients.Post("/:id/diagnosis", SuggestDiagnosis(deps.Diagnosis))

	app.Post("/files/share", ShareFile(deps.Files))
}

// HealthCheck godoc
// @Summary Readiness probe
// @Description Pings the database when the database backend is enabled.
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db == nil {
			return c.JSON(fiber.Map{"status": "healthy", "database": "disabled"})
		}
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.JSON(fiber.Map{"status": "healthy", "database": "up"})
	}
}

// LivenessProbe godoc
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// GetFeatures godoc
// @Summary Active backend flags
// @Tags health
// @Produce json
// @Success 200 {object} config.Features
// @Router /features [get]
func GetFeatures(features config.Features) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(features)
	}
}

// Metrics serves the Prometheus exposition format for g.
func Metrics(g prometheus.Gatherer) fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}

// ListPatients godoc
// @Summary List patients
// @Description Case-insensitive search on name, substring search on phone.
// @Tags patients
// @Produce json
// @Param q query string false "search query"
// @Success 200 {array} model.Patient
// @Failure 500 {object} errorPayload
// @Router /patients [get]
func ListPatients(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		patients, err := svc.List(c.UserContext(), c.Query("q"))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(patients)
	}
}

// AddPatient godoc
// @Summary Register a patient
// @Tags patients
// @Accept json
// @Produce json
// @Param patient body model.NewPatient true "patient"
// @Success 201 {object} model.Patient
// @Failure 400 {object} errorPayload
// @Router /patients [post]
func AddPatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.NewPatient
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		p, err := svc.Add(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(p)
	}
}

// GetPatient godoc
// @Summary Get a patient
// @Tags patients
// @Produce json
// @Param id path int true "patient id"
// @Success 200 {object} model.Patient
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /patients/{id} [get]
func GetPatient(svc service.PatientService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		p, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(p)
	}
}

// ListFiles godoc
// @Summary List a patient's files
// @Description Remote files come first when remote storage is enabled.
// @Tags files
// @Produce json
// @Param id path int true "patient id"
// @Success 200 {array} model.DigitalFile
// @Failure 400 {object} errorPayload
// @Router /patients/{id}/files [get]
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		files, err := svc.List(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(files)
	}
}

// AddFile godoc
// @Summary Attach a file to a patient
// @Tags files
// @Accept json
// @Produce json
// @Param id path int true "patient id"
// @Param file body model.NewFile true "file"
// @Success 201 {object} model.DigitalFile
// @Failure 400 {object} errorPayload
// @Router /patients/{id}/files [post]
func AddFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in model.NewFile
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		f, err := svc.Add(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(f)
	}
}

// ShareFile godoc
// @Summary Get a shareable link for a file
// @Description Unsupported combinations return success=false with an error message.
// @Tags files
// @Accept json
// @Produce json
// @Param file body model.DigitalFile true "file as returned by the listing"
// @Success 200 {object} model.ShareResult
// @Failure 400 {object} errorPayload
// @Router /files/share [post]
func ShareFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in model.DigitalFile
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		res, err := svc.Share(c.UserContext(), in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// ListTreatments godoc
// @Summary List a patient's treatments
// @Tags treatments
// @Produce json
// @Param id path int true "patient id"
// @Success 200 {array} model.Treatment
// @Failure 404 {object} errorPayload
// @Router /patients/{id}/treatments [get]
func ListTreatments(svc service.TreatmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		items, err := svc.List(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(items)
	}
}

// AddTreatment godoc
// @Summary Record a treatment
// @Tags treatments
// @Accept json
// @Produce json
// @Param id path int true "patient id"
// @Param treatment body model.NewTreatment true "treatment"
// @Success 201 {object} model.Treatment
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Router /patients/{id}/treatments [post]
func AddTreatment(svc service.TreatmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in model.NewTreatment
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		t, err := svc.Add(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(t)
	}
}

// SuggestDiagnosis godoc
// @Summary AI diagnosis suggestion
// @Description patientHistory defaults to the patient's recorded history.
// @Tags diagnosis
// @Accept json
// @Produce json
// @Param id path int true "patient id"
// @Param request body model.DiagnosisRequest true "chart markings"
// @Success 200 {object} model.DiagnosisSuggestion
// @Failure 400 {object} errorPayload
// @Failure 502 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /patients/{id}/diagnosis [post]
func SuggestDiagnosis(svc service.DiagnosisService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var in model.DiagnosisRequest
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
		}
		out, err := svc.Suggest(c.UserContext(), id, in)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(out)
	}
}
