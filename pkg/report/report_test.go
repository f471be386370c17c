package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/leapstack-labs/spfxcheck/pkg/upgrade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow() time.Time {
	return time.Date(2018, time.June, 20, 9, 30, 0, 0, time.UTC)
}

func sampleFindings() []upgrade.Finding {
	return []upgrade.Finding{
		{
			ID:             "FN001001",
			Title:          "@microsoft/sp-core-library",
			Description:    "Upgrade SharePoint Framework dependency package @microsoft/sp-core-library",
			Severity:       upgrade.SeverityRequired,
			File:           "./package.json",
			ResolutionType: upgrade.ResolutionCommand,
			Resolution:     "npm i @microsoft/sp-core-library@1.5.0 -SE",
		},
		{
			ID:             "FN010001",
			Title:          ".yo-rc.json version",
			Description:    "Update version in .yo-rc.json",
			Severity:       upgrade.SeverityRecommended,
			File:           "./.yo-rc.json",
			ResolutionType: upgrade.ResolutionEdit,
			Resolution:     `{"version": "1.5.0"}`,
		},
		{
			ID:             "FN002001",
			Title:          "@microsoft/sp-build-web",
			Severity:       upgrade.SeverityRequired,
			File:           "./package.json",
			ResolutionType: upgrade.ResolutionCommand,
			Resolution:     "npm i @microsoft/sp-build-web@1.5.0 -DE",
		},
		{
			ID:             "FN012013",
			Title:          "tsconfig.json lib",
			Severity:       upgrade.SeverityRequired,
			File:           "./tsconfig.json",
			ResolutionType: upgrade.ResolutionEdit,
			Resolution:     `{"lib": ["es5"]}`,
		},
		{
			ID:             "FN010002",
			Title:          ".yo-rc.json environment",
			Severity:       upgrade.SeverityOptional,
			File:           "./.yo-rc.json",
			ResolutionType: upgrade.ResolutionEdit,
			Resolution:     `{"environment": "spo"}`,
		},
	}
}

func render(t *testing.T, findings []upgrade.Finding, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, findings, opts))
	return buf.String()
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{in: "json", want: FormatJSON},
		{in: "text", want: FormatText},
		{in: "md", want: FormatMarkdown},
		{in: "markdown", want: FormatMarkdown},
		{in: " JSON ", want: FormatJSON},
		{in: "html", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, nil, Options{Format: "html"})
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, buf.String())
}

func TestRender_JSON(t *testing.T) {
	out := render(t, sampleFindings(), Options{Format: FormatJSON})

	var got []upgrade.Finding
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	if diff := cmp.Diff(sampleFindings(), got); diff != "" {
		t.Errorf("findings mismatch (-want +got):\n%s", diff)
	}
	assert.Contains(t, out, `"resolutionType": "cmd"`)
	assert.Contains(t, out, `"severity": "Recommended"`)
}

func TestRender_JSONEmpty(t *testing.T) {
	assert.Equal(t, "[]\n", render(t, nil, Options{Format: FormatJSON}))
}

func TestRender_Text(t *testing.T) {
	out := render(t, sampleFindings()[:2], Options{Format: FormatText})

	want := `[
  {
    "id": "FN001001",
    "resolution": "npm i @microsoft/sp-core-library@1.5.0 -SE"
  },
  {
    "id": "FN010001",
    "resolution": "{\"version\": \"1.5.0\"}"
  }
]
`
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("text report mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_TextIsDefault(t *testing.T) {
	assert.Equal(t,
		render(t, sampleFindings(), Options{Format: FormatText}),
		render(t, sampleFindings(), Options{}))
}

func TestRender_TextEmpty(t *testing.T) {
	assert.Equal(t, "[]\n", render(t, []upgrade.Finding{}, Options{Format: FormatText}))
	assert.Equal(t, "[]\n", render(t, nil, Options{Format: FormatText}))
}

func TestRender_Markdown(t *testing.T) {
	out := render(t, sampleFindings(), Options{
		Format:        FormatMarkdown,
		TargetVersion: "1.5.0",
		ProjectName:   "hello-world",
		Now:           fixedNow,
	})

	want := "# Upgrade project hello-world to v1.5.0\n" +
		"\n" +
		"Date: 2018-06-20\n" +
		"\n" +
		"## Findings\n" +
		"\n" +
		"### FN001001 @microsoft/sp-core-library | Required\n" +
		"\n" +
		"Upgrade SharePoint Framework dependency package @microsoft/sp-core-library\n" +
		"\n" +
		"Execute the following command:\n" +
		"\n" +
		"```sh\nnpm i @microsoft/sp-core-library@1.5.0 -SE\n```\n" +
		"\n" +
		"File: [./package.json](./package.json)\n" +
		"\n" +
		"### FN010001 .yo-rc.json version | Recommended\n" +
		"\n" +
		"Update version in .yo-rc.json\n" +
		"\n" +
		"In file [./.yo-rc.json](./.yo-rc.json) update the code as follows:\n" +
		"\n" +
		"```json\n{\"version\": \"1.5.0\"}\n```\n" +
		"\n" +
		"File: [./.yo-rc.json](./.yo-rc.json)\n" +
		"\n" +
		"### FN002001 @microsoft/sp-build-web | Required\n" +
		"\n" +
		"Execute the following command:\n" +
		"\n" +
		"```sh\nnpm i @microsoft/sp-build-web@1.5.0 -DE\n```\n" +
		"\n" +
		"File: [./package.json](./package.json)\n" +
		"\n" +
		"### FN012013 tsconfig.json lib | Required\n" +
		"\n" +
		"In file [./tsconfig.json](./tsconfig.json) update the code as follows:\n" +
		"\n" +
		"```json\n{\"lib\": [\"es5\"]}\n```\n" +
		"\n" +
		"File: [./tsconfig.json](./tsconfig.json)\n" +
		"\n" +
		"### FN010002 .yo-rc.json environment | Optional\n" +
		"\n" +
		"In file [./.yo-rc.json](./.yo-rc.json) update the code as follows:\n" +
		"\n" +
		"```json\n{\"environment\": \"spo\"}\n```\n" +
		"\n" +
		"File: [./.yo-rc.json](./.yo-rc.json)\n" +
		"\n" +
		"## Summary\n" +
		"\n" +
		"### Execute script\n" +
		"\n" +
		"```sh\nnpm i @microsoft/sp-core-library@1.5.0 -SE\nnpm i @microsoft/sp-build-web@1.5.0 -DE\n```\n" +
		"\n" +
		"### Modify files\n" +
		"\n" +
		"#### [./.yo-rc.json](./.yo-rc.json)\n" +
		"\n" +
		"```json\n{\"version\": \"1.5.0\"}\n```\n" +
		"\n" +
		"```json\n{\"environment\": \"spo\"}\n```\n" +
		"\n" +
		"#### [./tsconfig.json](./tsconfig.json)\n" +
		"\n" +
		"```json\n{\"lib\": [\"es5\"]}\n```\n"

	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("markdown report mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_MarkdownEmpty(t *testing.T) {
	out := render(t, nil, Options{
		Format:        FormatMarkdown,
		TargetVersion: "1.5.1",
		ProjectName:   "app",
		Now:           fixedNow,
	})

	assert.Contains(t, out, "# Upgrade project app to v1.5.1\n")
	assert.Contains(t, out, "No upgrade steps required.")
	assert.Contains(t, out, "### Execute script\n\n```sh\n```\n")
	assert.True(t, len(out) > 0 && out[len(out)-1] == '\n')
}

func TestRender_MarkdownDeterministic(t *testing.T) {
	opts := Options{Format: FormatMarkdown, TargetVersion: "1.5.0", ProjectName: "p", Now: fixedNow}
	findings := sampleFindings()

	first := render(t, findings, opts)
	second := render(t, findings, opts)
	assert.Equal(t, first, second)
	assert.Equal(t, sampleFindings(), findings, "input must not be modified")
}

func TestGroupEdits(t *testing.T) {
	groups := groupEdits(sampleFindings())
	want := []fileEdits{
		{file: "./.yo-rc.json", resolutions: []string{`{"version": "1.5.0"}`, `{"environment": "spo"}`}},
		{file: "./tsconfig.json", resolutions: []string{`{"lib": ["es5"]}`}},
	}
	if diff := cmp.Diff(want, groups, cmp.AllowUnexported(fileEdits{})); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
}

func TestFenceLanguage(t *testing.T) {
	assert.Equal(t, "json", fenceLanguage("./package.json"))
	assert.Equal(t, "yaml", fenceLanguage("./config.yml"))
	assert.Equal(t, "json", fenceLanguage("./.yo-rc"))
}
