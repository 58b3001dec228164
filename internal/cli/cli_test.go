package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mcdonaldj/gitorade/internal/commit"
	"github.com/mcdonaldj/gitorade/internal/config"
	"github.com/mcdonaldj/gitorade/internal/locate"
)

// ============================================================================
// Mock implementations for testing
// ============================================================================

// mockConfigService implements ConfigService for testing.
type mockConfigService struct {
	config     *config.Config
	loadErr    error
	saveErr    error
	configPath string
	saved      *config.Config
}

func newMockConfigService() *mockConfigService {
	return &mockConfigService{
		config:     config.DefaultConfig(),
		configPath: "/test/.gitorade/config.yaml",
	}
}

func (m *mockConfigService) Load() (*config.Config, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.config, nil
}

func (m *mockConfigService) Save(cfg *config.Config) error {
	m.saved = cfg
	return m.saveErr
}

func (m *mockConfigService) ConfigPath() string { return m.configPath }

func (m *mockConfigService) DefaultConfig() *config.Config { return config.DefaultConfig() }

// mockGitService implements GitService for testing.
type mockGitService struct {
	git       locate.GitBinary
	locateErr error

	result    commit.Result
	commitErr error

	locateCalls int
	lastReq     *commit.Request
}

func newMockGitService() *mockGitService {
	return &mockGitService{
		git: locate.GitBinary{Path: "/usr/bin/git", Version: "2.30.0"},
	}
}

func (m *mockGitService) Locate() (locate.GitBinary, error) {
	m.locateCalls++
	if m.locateErr != nil {
		return locate.GitBinary{}, m.locateErr
	}
	return m.git, nil
}

func (m *mockGitService) Commit(git locate.GitBinary, req commit.Request) (commit.Result, error) {
	m.lastReq = &req
	if m.commitErr != nil {
		return commit.Result{ExitCode: -1}, m.commitErr
	}
	return m.result, nil
}

// newTestCLI builds a CLI wired with mocks and captured streams.
func newTestCLI(cfgSvc *mockConfigService, gitSvc *mockGitService, args ...string) (*CLI, *bytes.Buffer, *bytes.Buffer, *int) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	exitCode := 0

	c := NewForTesting(out, errOut, append([]string{"gitorade"}, args...))
	c.Exit = func(code int) { exitCode = code }
	c.ConfigSvc = cfgSvc
	c.GitSvc = gitSvc
	return c, out, errOut, &exitCode
}

// ============================================================================
// Dispatch
// ============================================================================

func TestRunNoCommand(t *testing.T) {
	c, out, _, exitCode := newTestCLI(newMockConfigService(), newMockGitService())
	c.Run()

	if !strings.Contains(out.String(), "No command specified") {
		t.Errorf("output = %q", out.String())
	}
	if *exitCode != 0 {
		t.Errorf("exit code = %d, expected 0", *exitCode)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	c, _, errOut, exitCode := newTestCLI(newMockConfigService(), newMockGitService(), "bogus")
	c.Run()

	if !strings.Contains(errOut.String(), "Unknown command: bogus") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if *exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", *exitCode)
	}
}

func TestRunHelp(t *testing.T) {
	for _, arg := range []string{"help", "-h", "--help"} {
		t.Run(arg, func(t *testing.T) {
			c, out, _, _ := newTestCLI(newMockConfigService(), newMockGitService(), arg)
			c.Run()
			if !strings.Contains(out.String(), "Usage:") {
				t.Errorf("help output missing usage: %q", out.String())
			}
		})
	}
}

// ============================================================================
// version
// ============================================================================

func TestVersionCommand(t *testing.T) {
	c, out, _, exitCode := newTestCLI(newMockConfigService(), newMockGitService(), "version")
	c.Run()

	if !strings.Contains(out.String(), "gitorade vtest") {
		t.Errorf("output missing tool version: %q", out.String())
	}
	if !strings.Contains(out.String(), "/usr/bin/git (git version 2.30.0)") {
		t.Errorf("output missing git path/version: %q", out.String())
	}
	if *exitCode != 0 {
		t.Errorf("exit code = %d, expected 0", *exitCode)
	}
}

func TestVersionGitNotFound(t *testing.T) {
	gitSvc := newMockGitService()
	gitSvc.locateErr = locate.ErrNotFound

	c, _, errOut, exitCode := newTestCLI(newMockConfigService(), gitSvc, "-v")
	c.Run()

	if !strings.Contains(errOut.String(), "git not found") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if *exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", *exitCode)
	}
}

func TestVersionUnsupportedGit(t *testing.T) {
	gitSvc := newMockGitService()
	gitSvc.locateErr = &locate.UnsupportedVersionError{Version: "1.8.0"}

	c, _, errOut, exitCode := newTestCLI(newMockConfigService(), gitSvc, "--version")
	c.Run()

	// The offending version must be named, not merged into "not found".
	if !strings.Contains(errOut.String(), "1.8.0") {
		t.Errorf("stderr = %q, expected the offending version", errOut.String())
	}
	if strings.Contains(errOut.String(), "git not found") {
		t.Errorf("unsupported version reported as not found: %q", errOut.String())
	}
	if *exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", *exitCode)
	}
}

// ============================================================================
// init / status
// ============================================================================

func TestInitConfig(t *testing.T) {
	cfgSvc := newMockConfigService()
	c, out, _, exitCode := newTestCLI(cfgSvc, newMockGitService(), "init")
	c.Run()

	if cfgSvc.saved == nil {
		t.Fatal("config was not saved")
	}
	if !strings.Contains(out.String(), cfgSvc.configPath) {
		t.Errorf("output = %q, expected config path", out.String())
	}
	if *exitCode != 0 {
		t.Errorf("exit code = %d, expected 0", *exitCode)
	}
}

func TestInitConfigSaveError(t *testing.T) {
	cfgSvc := newMockConfigService()
	cfgSvc.saveErr = errors.New("disk full")

	c, _, errOut, exitCode := newTestCLI(cfgSvc, newMockGitService(), "init")
	c.Run()

	if !strings.Contains(errOut.String(), "disk full") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if *exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", *exitCode)
	}
}

func TestShowStatus(t *testing.T) {
	cfgSvc := newMockConfigService()
	cfgSvc.config = &config.Config{
		DefaultType: "feat",
		Overrides:   []config.Override{{Key: "core.eol", Value: "lf"}},
	}

	c, out, _, _ := newTestCLI(cfgSvc, newMockGitService(), "status")
	c.Run()

	for _, want := range []string{"feat", "Overrides: 1", "/usr/bin/git (2.30.0)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("status output missing %q: %q", want, out.String())
		}
	}
}

func TestShowStatusGitMissing(t *testing.T) {
	gitSvc := newMockGitService()
	gitSvc.locateErr = locate.ErrNotFound

	c, out, _, exitCode := newTestCLI(newMockConfigService(), gitSvc, "status")
	c.Run()

	if !strings.Contains(out.String(), "git not found") {
		t.Errorf("status output = %q", out.String())
	}
	// Status is informational; a missing git is not a status failure.
	if *exitCode != 0 {
		t.Errorf("exit code = %d, expected 0", *exitCode)
	}
}

// ============================================================================
// commit
// ============================================================================

func TestCommitEndToEnd(t *testing.T) {
	gitSvc := newMockGitService()
	gitSvc.result = commit.Result{ExitCode: 0, Output: "[main abc1234] [feat]: add retry logic\n"}

	c, out, _, exitCode := newTestCLI(newMockConfigService(), gitSvc,
		"commit", "-m", "add retry logic", "-t", "feat")
	c.Run()

	req := gitSvc.lastReq
	if req == nil {
		t.Fatal("commit was not invoked")
	}
	if req.Message != "add retry logic" || req.Type != "feat" {
		t.Errorf("request = %+v", req)
	}
	if len(req.Files) != 0 {
		t.Errorf("Files = %v, expected none (commit staged changes)", req.Files)
	}
	if !strings.Contains(out.String(), "[main abc1234]") {
		t.Errorf("success output should go to stdout: %q", out.String())
	}
	if !strings.Contains(out.String(), "committed: [feat]: add retry logic") {
		t.Errorf("output = %q", out.String())
	}
	if *exitCode != 0 {
		t.Errorf("exit code = %d, expected 0", *exitCode)
	}
}

func TestCommitShorthandMessage(t *testing.T) {
	gitSvc := newMockGitService()

	c, _, _, _ := newTestCLI(newMockConfigService(), gitSvc,
		"commit", "-m", "gitorade fix typo")
	c.Run()

	req := gitSvc.lastReq
	if req == nil {
		t.Fatal("commit was not invoked")
	}
	// Shorthand is pre-formatted; the type is cleared so the message
	// passes through the executor verbatim.
	if req.Message != "[fix]: typo" {
		t.Errorf("Message = %q, expected [fix]: typo", req.Message)
	}
	if req.Type != "" {
		t.Errorf("Type = %q, expected empty after shorthand", req.Type)
	}
}

func TestCommitMissingMessage(t *testing.T) {
	gitSvc := newMockGitService()

	c, _, errOut, exitCode := newTestCLI(newMockConfigService(), gitSvc, "commit")
	c.Run()

	if !strings.Contains(errOut.String(), "commit message required") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if *exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", *exitCode)
	}
	// Fail fast: nothing may be spawned before argument validation.
	if gitSvc.locateCalls != 0 {
		t.Errorf("locate ran %d times before validation, expected 0", gitSvc.locateCalls)
	}
	if gitSvc.lastReq != nil {
		t.Error("commit must not run without a message")
	}
}

func TestCommitUnrecognizedTypePassesMessageThrough(t *testing.T) {
	gitSvc := newMockGitService()

	c, _, _, _ := newTestCLI(newMockConfigService(), gitSvc,
		"commit", "-m", "just a message", "-t", "wip")
	c.Run()

	req := gitSvc.lastReq
	if req == nil {
		t.Fatal("commit was not invoked")
	}
	// Lenient fallback: the unrecognized tag is not rejected.
	if req.Message != "just a message" || req.Type != "wip" {
		t.Errorf("request = %+v", req)
	}
}

func TestCommitFiles(t *testing.T) {
	gitSvc := newMockGitService()

	c, _, _, _ := newTestCLI(newMockConfigService(), gitSvc,
		"commit", "-m", "msg", "-t", "fix", "a.go", "b.go")
	c.Run()

	req := gitSvc.lastReq
	if req == nil {
		t.Fatal("commit was not invoked")
	}
	if len(req.Files) != 2 || req.Files[0] != "a.go" || req.Files[1] != "b.go" {
		t.Errorf("Files = %v", req.Files)
	}
}

func TestCommitPathFlag(t *testing.T) {
	gitSvc := newMockGitService()

	c, _, _, _ := newTestCLI(newMockConfigService(), gitSvc,
		"commit", "-m", "msg", "-p", "/work/repo")
	c.Run()

	if gitSvc.lastReq == nil {
		t.Fatal("commit was not invoked")
	}
	if gitSvc.lastReq.Dir != "/work/repo" {
		t.Errorf("Dir = %q, expected /work/repo", gitSvc.lastReq.Dir)
	}
}

func TestCommitConfigOverrideFlags(t *testing.T) {
	gitSvc := newMockGitService()

	c, _, _, _ := newTestCLI(newMockConfigService(), gitSvc,
		"commit", "-m", "msg", "--core_autocrlf", "true", "--core_eol=lf")
	c.Run()

	req := gitSvc.lastReq
	if req == nil {
		t.Fatal("commit was not invoked")
	}
	if len(req.Overrides) != 2 {
		t.Fatalf("Overrides = %v, expected 2", req.Overrides)
	}
	// Underscores map back to dots; insertion order is preserved.
	if req.Overrides[0] != (commit.Override{Key: "core.autocrlf", Value: "true"}) {
		t.Errorf("Overrides[0] = %+v", req.Overrides[0])
	}
	if req.Overrides[1] != (commit.Override{Key: "core.eol", Value: "lf"}) {
		t.Errorf("Overrides[1] = %+v", req.Overrides[1])
	}
}

func TestCommitConfigDefaultsApply(t *testing.T) {
	cfgSvc := newMockConfigService()
	cfgSvc.config = &config.Config{
		DefaultType: "chore",
		Overrides:   []config.Override{{Key: "commit.gpgsign", Value: "false"}},
	}
	gitSvc := newMockGitService()

	c, _, _, _ := newTestCLI(cfgSvc, gitSvc, "commit", "-m", "msg")
	c.Run()

	req := gitSvc.lastReq
	if req == nil {
		t.Fatal("commit was not invoked")
	}
	if req.Type != "chore" {
		t.Errorf("Type = %q, expected config default chore", req.Type)
	}
	if len(req.Overrides) != 1 || req.Overrides[0].Key != "commit.gpgsign" {
		t.Errorf("Overrides = %v", req.Overrides)
	}
}

func TestCommitFlagBeatsConfigDefault(t *testing.T) {
	cfgSvc := newMockConfigService()
	cfgSvc.config = &config.Config{DefaultType: "chore"}
	gitSvc := newMockGitService()

	c, _, _, _ := newTestCLI(cfgSvc, gitSvc, "commit", "-m", "msg", "-t", "feat")
	c.Run()

	if gitSvc.lastReq == nil {
		t.Fatal("commit was not invoked")
	}
	if gitSvc.lastReq.Type != "feat" {
		t.Errorf("Type = %q, expected flag to win", gitSvc.lastReq.Type)
	}
}

func TestCommitFailurePassthrough(t *testing.T) {
	gitSvc := newMockGitService()
	gitSvc.result = commit.Result{ExitCode: 128, Output: "fatal: not a git repository\n"}

	c, out, errOut, exitCode := newTestCLI(newMockConfigService(), gitSvc,
		"commit", "-m", "msg")
	c.Run()

	// Combined output goes to stderr on failure, not stdout.
	if !strings.Contains(errOut.String(), "fatal: not a git repository") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if strings.Contains(out.String(), "fatal") {
		t.Errorf("failure output leaked to stdout: %q", out.String())
	}
	// git's own exit code is passed through.
	if *exitCode != 128 {
		t.Errorf("exit code = %d, expected 128", *exitCode)
	}
}

func TestCommitGitNotFound(t *testing.T) {
	gitSvc := newMockGitService()
	gitSvc.locateErr = locate.ErrNotFound

	c, _, errOut, exitCode := newTestCLI(newMockConfigService(), gitSvc,
		"commit", "-m", "msg")
	c.Run()

	if !strings.Contains(errOut.String(), "git not found") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if *exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", *exitCode)
	}
	if gitSvc.lastReq != nil {
		t.Error("commit must not run without a located git")
	}
}

func TestCommitStartFailure(t *testing.T) {
	gitSvc := newMockGitService()
	gitSvc.commitErr = errors.New("fork/exec: permission denied")

	c, _, errOut, exitCode := newTestCLI(newMockConfigService(), gitSvc,
		"commit", "-m", "msg")
	c.Run()

	if !strings.Contains(errOut.String(), "permission denied") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if *exitCode != 1 {
		t.Errorf("exit code = %d, expected 1", *exitCode)
	}
}

func TestCommitFlagMissingValue(t *testing.T) {
	for _, flag := range []string{"-m", "-t", "-p", "--core_autocrlf"} {
		t.Run(flag, func(t *testing.T) {
			c, _, errOut, exitCode := newTestCLI(newMockConfigService(), newMockGitService(),
				"commit", flag)
			c.Run()

			if !strings.Contains(errOut.String(), "requires a value") {
				t.Errorf("stderr = %q", errOut.String())
			}
			if *exitCode != 1 {
				t.Errorf("exit code = %d, expected 1", *exitCode)
			}
		})
	}
}
