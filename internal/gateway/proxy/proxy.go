package proxy

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
)

// ============================================================
// Proxy Handler
// ============================================================

type Proxy struct {
	client *http.Client
	log    zerolog.Logger
}

// New builds a proxy; a nil client gets a 30s-timeout default.
func New(client *http.Client, log zerolog.Logger) *Proxy {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &Proxy{
		client: client,
		log:    log.With().Str("component", "proxy").Logger(),
	}
}

// To proxies every request to a fixed upstream URL.
func (p *Proxy) To(targetURL string) fiber.Handler {
	return func(c fiber.Ctx) error {
		return p.Forward(c, targetURL)
	}
}

// Forward proxies the request to targetURL, for dynamic paths.
func (p *Proxy) Forward(c fiber.Ctx, targetURL string) error {
	contentType := c.Get(fiber.HeaderContentType)

	p.log.Debug().
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("content_type", contentType).
		Int("content_length", len(c.Body())).
		Str("target", targetURL).
		Msg("forwarding")

	if !strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		return p.sendRaw(c, targetURL, contentType)
	}
	return p.sendMultipart(c, targetURL)
}

func (p *Proxy) sendRaw(c fiber.Ctx, targetURL, contentType string) error {
	req, err := http.NewRequest(c.Method(), targetURL, bytes.NewReader(c.Body()))
	if err != nil {
		p.log.Error().Err(err).Msg("build request")
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "proxy failed"})
	}

	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	return p.do(c, req)
}

func (p *Proxy) sendMultipart(c fiber.Ctx, targetURL string) error {
	form, err := c.MultipartForm()
	if err != nil {
		p.log.Warn().Err(err).Msg("parse multipart")
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"success": false, "error": "invalid multipart data"})
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, files := range form.File {
		for _, fileHeader := range files {
			if err := copyFilePart(writer, key, fileHeader); err != nil {
				p.log.Warn().Err(err).Str("field", key).Msg("skip multipart file")
			}
		}
	}

	for key, values := range form.Value {
		for _, value := range values {
			if err := writer.WriteField(key, value); err != nil {
				p.log.Warn().Err(err).Str("field", key).Msg("skip multipart field")
			}
		}
	}

	if err := writer.Close(); err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "proxy failed"})
	}

	req, err := http.NewRequest(c.Method(), targetURL, body)
	if err != nil {
		p.log.Error().Err(err).Msg("build multipart request")
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"success": false, "error": "proxy failed"})
	}
	req.Header.Set(fiber.HeaderContentType, writer.FormDataContentType())
	return p.do(c, req)
}

func copyFilePart(writer *multipart.Writer, key string, fileHeader *multipart.FileHeader) error {
	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, key, fileHeader.Filename))
	h.Set("Content-Type", fileHeader.Header.Get("Content-Type"))

	part, err := writer.CreatePart(h)
	if err != nil {
		return fmt.Errorf("create part: %w", err)
	}
	_, err = io.Copy(part, file)
	return err
}

func (p *Proxy) do(c fiber.Ctx, req *http.Request) error {
	resp, err := p.client.Do(req)
	if err != nil {
		p.log.Error().Err(err).Str("target", req.URL.String()).Msg("upstream unreachable")
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"success": false, "error": "failed to reach upstream service"})
	}
	defer resp.Body.Close()

	return p.copyResponse(c, resp)
}

func (p *Proxy) copyResponse(c fiber.Ctx, resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		p.log.Error().Err(err).Msg("read upstream response")
		return c.Status(http.StatusBadGateway).JSON(fiber.Map{"success": false, "error": "invalid upstream response"})
	}

	for key, values := range resp.Header {
		if len(values) > 0 {
			c.Set(key, values[0])
		}
	}

	c.Status(resp.StatusCode)
	return c.Send(data)
}
