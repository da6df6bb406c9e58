package packages_test

import (
	"context"
	"testing"

	"github.com/arthur-debert/ricer/pkg/filesystem"
	"github.com/arthur-debert/ricer/pkg/packages"
	"github.com/arthur-debert/ricer/pkg/runner"
	"github.com/arthur-debert/ricer/pkg/testutil"
	"github.com/arthur-debert/ricer/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHandler struct {
	name  string
	calls [][]string
}

func (s *stubHandler) Name() string { return s.name }

func (s *stubHandler) Apply(_ context.Context, pkgs []string) packages.Report {
	s.calls = append(s.calls, pkgs)
	return packages.Report{Handler: s.name}
}

func TestDispatchIsUnconditional(t *testing.T) {
	h := &stubHandler{name: "stub"}
	printer, _ := testutil.NewBufferPrinter()
	o := packages.NewOrchestrator(h, h, printer)

	report := o.Dispatch(context.Background(), h, nil)

	assert.Equal(t, "stub", report.Handler)
	assert.Equal(t, [][]string{nil}, h.calls)
}

func TestRunOrdersGroupsAndHandlers(t *testing.T) {
	direct := &stubHandler{name: "pacman"}
	community := &stubHandler{name: "aur"}
	printer, buf := testutil.NewBufferPrinter()
	o := packages.NewOrchestrator(direct, community, printer)

	groups := []types.Group{
		{Name: "basic requirements", Pacman: []string{"cmake"}},
		{Name: "desktop apps", Pacman: []string{"discord"}, AUR: []string{"google-chrome"}},
	}
	reports := o.Run(context.Background(), groups)

	assert.Equal(t, "#1. basic requirements\n#2. desktop apps\n", buf.String())
	assert.Equal(t, [][]string{{"cmake"}, {"discord"}}, direct.calls)
	assert.Equal(t, [][]string{nil, {"google-chrome"}}, community.calls)
	require.Len(t, reports, 4)
	assert.Equal(t, []string{"pacman", "aur", "pacman", "aur"},
		[]string{reports[0].Handler, reports[1].Handler, reports[2].Handler, reports[3].Handler})
}

func TestRunStopsWhenCancelled(t *testing.T) {
	h := &stubHandler{name: "stub"}
	printer, buf := testutil.NewBufferPrinter()
	o := packages.NewOrchestrator(h, h, printer)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	reports := o.Run(ctx, []types.Group{{Name: "fonts", Pacman: []string{"noto-fonts-emoji"}}})

	assert.Empty(t, reports)
	assert.Empty(t, h.calls)
	assert.Empty(t, buf.String())
}

func TestRunWithRealHandlers(t *testing.T) {
	rec := testutil.NewRecordingExecutor()
	printer, buf := testutil.NewBufferPrinter()
	r := runner.New(types.Mode{Uninstall: true}, runner.Options{Executor: rec, Printer: printer})
	o := packages.NewOrchestrator(
		packages.NewPacman(r, packages.PacmanOptions{}),
		packages.NewAUR(r, filesystem.NewOS(), packages.AUROptions{}),
		printer,
	)

	o.Run(context.Background(), []types.Group{
		{Name: "necessary fonts", Pacman: []string{"noto-fonts-emoji"}, AUR: []string{"ttf-meslo"}},
	})

	assert.Equal(t, []string{
		"sudo -k",
		"sudo pacman -Rnsc noto-fonts-emoji",
		"sudo -k",
		"sudo pacman -Rnsc ttf-meslo",
	}, rec.Lines())
	assert.Contains(t, buf.String(), "#1. necessary fonts\n")
}
