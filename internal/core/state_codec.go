package core

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"vspcatalog/internal/types"
)

// Defaults for attributes absent from older state documents.
const (
	legacyToolVersion      = "Pre 1.3"
	unknownExternalVersion = "Unknown"
	defaultLogLevel        = "INFO"
)

type stateDocument struct {
	XMLName   xml.Name
	Attrs     []xml.Attr      `xml:",any,attr"`
	Variables []stateVariable `xml:"Variable"`
}

type stateVariable struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

// EncodeState renders snapshot as a state document.
func EncodeState(snapshot types.Snapshot) string {
	var sb strings.Builder
	sb.WriteString("<?xml version=\"1.0\"?>\n")
	fmt.Fprintf(&sb, "<State Version=\"%s\" ID=\"%s\" NamingCode=\"%s\" SetID=\"%d\" NApplyDes=\"%d\" VSPVersion=\"%s\" Epsilon=\"%s\" LogLevel=\"%s\">\n",
		escapeAttr(snapshot.Versions.Tool),
		escapeAttr(snapshot.Filename),
		snapshot.Settings.Naming.Code(),
		snapshot.Settings.SetID,
		snapshot.Settings.NApplyDes,
		escapeAttr(snapshot.Versions.External),
		FormatEpsilon(snapshot.Settings.Epsilon),
		escapeAttr(snapshot.Versions.LogLevel))
	for _, v := range snapshot.Variables {
		fmt.Fprintf(&sb, "  <Variable ID=\"%s\" Value=\"%s\" VSPID=\"%s\" STATE=\"%s\" XPATH=\"%s\"/>\n",
			escapeAttr(v.FullName()), escapeAttr(v.Value), escapeAttr(v.ID), v.Classification(), escapeAttr(v.Locator))
	}
	sb.WriteString("</State>\n")
	return sb.String()
}

// DecodeState parses a state document. A model document is accepted in its
// place; its variables are all inputs. A variable with a state this version
// does not know is skipped and logged; the rest of the document still loads.
func DecodeState(ctx context.Context, data []byte) (types.Snapshot, error) {
	var doc stateDocument
	if err := xml.Unmarshal(data, &doc); err != nil {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse state document").
			WithCause(err)
	}
	if doc.XMLName.Local != "State" && doc.XMLName.Local != "Model" {
		return types.Snapshot{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unexpected state root element %q", doc.XMLName.Local))
	}

	snapshot := types.Snapshot{
		Filename: attrOr(doc.Attrs, "ID", ""),
		Settings: types.Settings{
			Naming:    types.ParseNamingCode(attrOr(doc.Attrs, "NamingCode", "")),
			Epsilon:   ParseEpsilon(attrOr(doc.Attrs, "Epsilon", "")),
			SetID:     intOr(attrOr(doc.Attrs, "SetID", ""), 1),
			NApplyDes: intOr(attrOr(doc.Attrs, "NApplyDes", ""), 1),
		},
		Versions: types.Versions{
			Tool:     attrOr(doc.Attrs, "Version", legacyToolVersion),
			External: attrOr(doc.Attrs, "VSPVersion", unknownExternalVersion),
			LogLevel: attrOr(doc.Attrs, "LogLevel", defaultLogLevel),
		},
	}
	for _, entry := range doc.Variables {
		v, ok, err := decodeVariable(entry)
		if err != nil {
			log.Ctx(ctx).Warn().Err(err).Msg("skipping state variable")
			continue
		}
		if ok {
			snapshot.Variables = append(snapshot.Variables, v)
		}
	}
	return snapshot, nil
}

// decodeVariable skips entries missing a full name, value or id.
func decodeVariable(entry stateVariable) (types.Variable, bool, error) {
	fullName, hasName := attr(entry.Attrs, "ID")
	value, hasValue := attr(entry.Attrs, "Value")
	id, hasID := attr(entry.Attrs, "VSPID")
	if !hasName || !hasValue || !hasID {
		return types.Variable{}, false, nil
	}
	parts := strings.Split(fullName, ":")
	if len(parts) != 3 {
		return types.Variable{}, false, nil
	}
	v := types.NewVariable(parts[0], parts[1], parts[2], id, value)
	v.Locator = attrOr(entry.Attrs, "XPATH", "")
	v.Selected = true
	if state, ok := attr(entry.Attrs, "STATE"); ok {
		classification, valid := types.ParseClassification(state)
		if !valid {
			return types.Variable{}, false, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("variable %s has unknown state %q", fullName, state))
		}
		if err := v.SetClassification(classification); err != nil {
			return types.Variable{}, false, err
		}
	} else if attrOr(entry.Attrs, "OUTPUT", "") == "true" {
		if err := v.SetClassification(types.ClassificationOutput); err != nil {
			return types.Variable{}, false, err
		}
	}
	return v, true, nil
}

// FormatEpsilon renders a match tolerance the way state documents store it.
func FormatEpsilon(epsilon *float64) string {
	if epsilon == nil {
		return "null"
	}
	return strconv.FormatFloat(*epsilon, 'f', 6, 64)
}

// ParseEpsilon returns nil for anything that is not a number.
func ParseEpsilon(value string) *float64 {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return nil
	}
	return &parsed
}

func attr(attrs []xml.Attr, name string) (string, bool) {
	for _, a := range attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

func attrOr(attrs []xml.Attr, name string, fallback string) string {
	if value, ok := attr(attrs, name); ok {
		return value
	}
	return fallback
}

func intOr(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func escapeAttr(value string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(value))
	return buf.String()
}
