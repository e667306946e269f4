// ABOUTME: Pipeline graph generation for an event's post-production job
// ABOUTME: Builds DOT and renders PNG via graphviz
package viz

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/studiokit/studioctl/models"
)

// stateColors picks a fill per workflow state for quick scanning.
var stateColors = map[models.StreamState]string{
	models.StateUnassigned:       "gray80",
	models.StateAssigned:         "lightyellow",
	models.StateInProgress:       "lightblue",
	models.StateReview:           "orange",
	models.StateChangesRequested: "lightpink",
	models.StateDone:             "palegreen",
	models.StateWaived:           "gray60",
}

// GeneratePipelineDOT builds a DOT description of an event's two streams:
// one node per stream colored by state, editor nodes attached by role
// edges, and due dates in the stream label.
func GeneratePipelineDOT(eventID string, job *models.PostProdJob) string {
	var b strings.Builder
	b.WriteString("digraph pipeline {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString("  node [shape=box, style=filled, fontname=\"Helvetica\"];\n")
	fmt.Fprintf(&b, "  label=%q;\n", "Event "+eventID)

	writeStream(&b, models.StreamPhoto, job.Photo)
	writeStream(&b, models.StreamVideo, job.Video)

	b.WriteString("}\n")
	return b.String()
}

func writeStream(b *strings.Builder, kind models.StreamKind, s *models.StreamSummary) {
	name := string(kind)
	if s == nil {
		fmt.Fprintf(b, "  %s [label=%q, fillcolor=gray90];\n", name, strings.ToUpper(name)+"\n(no job)")
		return
	}

	color, ok := stateColors[s.State]
	if !ok {
		color = "white"
	}

	label := fmt.Sprintf("%s\n%s", strings.ToUpper(name), s.RawState)
	if s.Version > 0 {
		label += fmt.Sprintf("\nv%d", s.Version)
	}
	if s.DraftDueAt != nil {
		label += "\ndraft due " + s.DraftDueAt.Format("Jan 2")
	}
	if s.FinalDueAt != nil {
		label += "\nfinal due " + s.FinalDueAt.Format("Jan 2")
	}
	if s.Risk != nil && s.Risk.AtRisk {
		label += "\nAT RISK"
	}
	fmt.Fprintf(b, "  %s [label=%q, fillcolor=%s];\n", name, label, color)

	for i, e := range s.Editors {
		editorNode := fmt.Sprintf("%s_ed%d", name, i)
		display := e.DisplayName
		if display == "" {
			display = e.UID
		}
		shape := "ellipse"
		if e.Role == models.RoleLead {
			shape = "doublecircle"
		}
		fmt.Fprintf(b, "  %s [label=%q, shape=%s, fillcolor=white];\n", editorNode, display, shape)
		fmt.Fprintf(b, "  %s -> %s [label=%q];\n", editorNode, name, string(e.Role))
	}
}

// RenderPipelinePNG renders the job graph to a PNG file.
func RenderPipelinePNG(ctx context.Context, eventID string, job *models.PostProdJob, outputPath string) error {
	dot := GeneratePipelineDOT(eventID, job)

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	graph, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return fmt.Errorf("failed to parse pipeline graph: %w", err)
	}
	defer graph.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, graph, graphviz.PNG, &buf); err != nil {
		return fmt.Errorf("failed to render graph: %w", err)
	}
	return os.WriteFile(outputPath, buf.Bytes(), 0644)
}
