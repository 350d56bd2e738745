package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vspcatalog/internal/adapters"
)

func (s Service) Export(ctx context.Context, req ExportRequest) (ExportResult, error) {
	if strings.TrimSpace(req.OutputPath) == "" {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	snapshot, err := s.States.Read(ctx, req.StatePath)
	if err != nil {
		return ExportResult{}, err
	}
	outPath, err := filepath.Abs(req.OutputPath)
	if err != nil {
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid output path").
			WithCause(err)
	}
	output := adapters.NewOutputFileAdapter(filepath.Dir(outPath))
	switch req.Format {
	case ExportDes:
		err = output.WriteDes(outPath, snapshot, req.ApplyOrder)
	case ExportXDDM:
		err = output.WriteXDDM(outPath, snapshot)
	case ExportScript:
		err = output.WriteScript(outPath, snapshot, req.WorkDir)
	case ExportState:
		err = s.States.Write(outPath, snapshot)
	default:
		return ExportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown export format: %s", req.Format))
	}
	if err != nil {
		return ExportResult{}, err
	}
	log.Ctx(ctx).Info().Str("format", string(req.Format)).Str("path", outPath).Msg("export written")
	return ExportResult{OutputPath: outPath}, nil
}
