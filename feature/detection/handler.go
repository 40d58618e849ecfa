package detection

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"shopping-agent/core/logger"
	"shopping-agent/core/source"
	"shopping-agent/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for product detection.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the detection routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/detect", h.HandleDetect)
}

type detectRequest struct {
	ImageBase64 string  `json:"image_base64"`
	Options     Options `json:"options"`
}

// HandleDetect detects products in an image.
// @Summary Detect Products
// @Description Detects purchasable products in an image. The image is read from a multipart "image" file, an "image_base64" form field, or a JSON body {"image_base64", "options"}.
// @Tags detection
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param image formData file false "Image file"
// @Param image_base64 formData string false "Base64 or data URL encoded image"
// @Param confidence_threshold formData number false "Minimum confidence"
// @Param max_results formData integer false "Maximum number of products"
// @Success 200 {object} Report
// @Failure 400 {object} map[string]string "No image provided"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /detect [post]
func (h *Handler) HandleDetect(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	img, opts, err := readRequest(c)
	if err != nil {
		l.Warn("Rejected detection request", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Detecting products",
		zap.String("mime_type", img.MimeType),
		zap.Int("bytes", len(img.Data)))

	report, err := h.service.Detect(c.UserContext(), img, opts)
	if err != nil {
		if errors.Is(err, ErrNoImage) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Detection failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// readRequest extracts the image and options, trying a multipart file,
// then a form field, then a JSON body.
func readRequest(c *fiber.Ctx) (source.Image, Options, error) {
	if form, err := c.MultipartForm(); err == nil {
		opts := formOptions(form.Value)
		if files := form.File["image"]; len(files) > 0 {
			img, err := readUpload(files[0])
			return img, opts, err
		}
		if values := form.Value["image_base64"]; len(values) > 0 {
			img, err := decode(values[0])
			return img, opts, err
		}
		return source.Image{}, opts, ErrNoImage
	}

	if encoded := c.FormValue("image_base64"); encoded != "" {
		opts := formOptions(map[string][]string{
			"confidence_threshold": {c.FormValue("confidence_threshold")},
			"max_results":          {c.FormValue("max_results")},
			"archive":              {c.FormValue("archive")},
		})
		img, err := decode(encoded)
		return img, opts, err
	}

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		var req detectRequest
		if err := json.Unmarshal(c.Body(), &req); err != nil {
			return source.Image{}, Options{}, fmt.Errorf("invalid request body: %w", err)
		}
		if req.ImageBase64 == "" {
			return source.Image{}, req.Options, ErrNoImage
		}
		img, err := decode(req.ImageBase64)
		return img, req.Options, err
	}

	return source.Image{}, Options{}, ErrNoImage
}

func readUpload(fh *multipart.FileHeader) (source.Image, error) {
	if fh.Filename == "" {
		return source.Image{}, errors.New("no file selected")
	}
	f, err := fh.Open()
	if err != nil {
		return source.Image{}, fmt.Errorf("failed to open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return source.Image{}, fmt.Errorf("failed to read upload: %w", err)
	}
	img, err := source.NewImage(data)
	if err != nil {
		return source.Image{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

func decode(encoded string) (source.Image, error) {
	img, err := source.DecodeImage(encoded)
	if err != nil {
		return source.Image{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return img, nil
}

// formOptions reads options from form values, ignoring unparseable ones.
func formOptions(values map[string][]string) Options {
	var opts Options
	if v := first(values["confidence_threshold"]); v != "" {
		if f, ok := utils.ToFloat(v); ok {
			opts.ConfidenceThreshold = &f
		}
	}
	if v := first(values["max_results"]); v != "" {
		if f, ok := utils.ToFloat(v); ok {
			n := int(f)
			opts.MaxResults = &n
		}
	}
	if v := first(values["archive"]); v != "" {
		archive := utils.ToBool(v)
		opts.Archive = &archive
	}
	return opts
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}
