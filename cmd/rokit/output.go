package main

import (
	"encoding/json"
	"fmt"
	"io"

	"rokit/internal/app"
	"rokit/internal/domain"
	"rokit/internal/tool"
)

func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printParsed(w io.Writer, parsed []app.ParsedID, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, parsed)
	}
	for _, p := range parsed {
		if _, err := fmt.Fprintf(w, "%s\tprovider=%s author=%s name=%s key=%s\n",
			p.Canonical, p.Provider, p.Author, p.Name, p.Key); err != nil {
			return err
		}
	}
	return nil
}

func printIDs(w io.Writer, ids []tool.ID, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, ids)
	}
	for _, id := range ids {
		if _, err := fmt.Fprintln(w, id.String()); err != nil {
			return err
		}
	}
	return nil
}

type issueJSON struct {
	Line    int    `json:"line"`
	Entry   string `json:"entry"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type reportJSON struct {
	Path      string      `json:"path"`
	OK        bool        `json:"ok"`
	Format    string      `json:"format,omitempty"`
	IDs       []tool.ID   `json:"ids,omitempty"`
	Issues    []issueJSON `json:"issues,omitempty"`
	Error     string      `json:"error,omitempty"`
	ErrorKind string      `json:"errorKind,omitempty"`
}

func printReports(w io.Writer, reports []app.FileReport, jsonOutput bool) error {
	if jsonOutput {
		payload := make([]reportJSON, 0, len(reports))
		for _, report := range reports {
			payload = append(payload, toReportJSON(report))
		}
		return writeJSON(w, payload)
	}
	for _, report := range reports {
		if report.Err != nil {
			if _, err := fmt.Fprintf(w, "%s: error: %v\n", report.Path, report.Err); err != nil {
				return err
			}
			continue
		}
		status := "ok"
		if !report.OK() {
			status = fmt.Sprintf("%d issue(s)", len(report.Result.Issues))
		}
		if _, err := fmt.Fprintf(w, "%s: %d id(s), %s\n", report.Path, len(report.Result.IDs), status); err != nil {
			return err
		}
		for _, issue := range report.Result.Issues {
			if _, err := fmt.Fprintf(w, "  %d: %s %q: %s\n", issue.Line, issue.Kind, issue.Entry, issue.Message()); err != nil {
				return err
			}
		}
	}
	return nil
}

func toReportJSON(report app.FileReport) reportJSON {
	out := reportJSON{
		Path: report.Path,
		OK:   report.OK(),
	}
	if report.Err != nil {
		out.Error = report.Err.Error()
		if kind, ok := domain.KindOf(report.Err); ok {
			out.ErrorKind = string(kind)
		}
		return out
	}
	out.Format = string(report.Result.Format)
	out.IDs = report.Result.IDs
	for _, issue := range report.Result.Issues {
		out.Issues = append(out.Issues, issueJSON{
			Line:    issue.Line,
			Entry:   issue.Entry,
			Kind:    issue.Kind,
			Message: issue.Message(),
		})
	}
	return out
}
