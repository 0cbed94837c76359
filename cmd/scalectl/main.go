// Command scalectl sends one conversion to a running scaler server, the same
// request the page makes, and prints the computed dimensions.
//
//	scalectl -scale HO -out CM -length 40 -unit FOOT
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/DrOldGuy/model-railroad-scaler/internal/frontend"
	"github.com/DrOldGuy/model-railroad-scaler/internal/logger"
	"github.com/DrOldGuy/model-railroad-scaler/internal/models"
)

const requestTimeout = 10 * time.Second

var errNoDimensions = errors.New("give at least one of -length, -width, -height")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		logger.Get(logger.ErrorLevel).Fatalw("scale request failed", "err", err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("scalectl", flag.ContinueOnError)
	fs.SetOutput(out)
	var (
		server = fs.String("server", "http://localhost:8080", "scaler base URL")
		typ    = fs.String("type", frontend.TypeFullsize, "which dimensions are given: fullsize or model")
		scale  = fs.String("scale", "HO", "scale name or 1:<factor>")
		output = fs.String("out", string(models.UnitInch), "unit of the computed dimensions")
		unit   = fs.String("unit", string(models.UnitFoot), "unit of the given dimensions")
		length = fs.String("length", "", "length value")
		width  = fs.String("width", "", "width value")
		height = fs.String("height", "", "height value")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	dims := &frontend.DimensionSet{}
	given := map[string]**frontend.Measurement{"length": &dims.Length, "width": &dims.Width, "height": &dims.Height}
	for name, value := range map[string]string{"length": *length, "width": *width, "height": *height} {
		if value != "" {
			*given[name] = &frontend.Measurement{Value: value, Measurement: models.Unit(strings.ToUpper(*unit))}
		}
	}
	if dims.Length == nil && dims.Width == nil && dims.Height == nil {
		return errNoDimensions
	}

	base, err := url.Parse(*server)
	if err != nil {
		return fmt.Errorf("parse -server: %w", err)
	}
	endpoint := base.ResolveReference(&url.URL{Path: frontend.ScalePath}).String()
	req := frontend.NewScaleRequest(*typ, *scale, models.Unit(strings.ToUpper(*output)), dims)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	resp, err := frontend.NewHTTPClient(endpoint, &http.Client{}).Scale(ctx, req)
	if err != nil {
		return err
	}

	computed := resp.Computed(req.Direction)
	if computed == nil {
		return errors.New("server returned no computed dimensions")
	}
	for _, line := range []struct {
		name string
		d    *models.Dimension
	}{{"length", computed.Length}, {"width", computed.Width}, {"height", computed.Height}} {
		if line.d != nil {
			fmt.Fprintf(out, "%-6s %s\n", line.name, line.d)
		}
	}
	return nil
}
