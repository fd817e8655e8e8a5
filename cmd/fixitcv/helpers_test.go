package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const fullResume = `{
	"personalInfo": {
		"firstName": "Arjun",
		"lastName": "Mehta",
		"email": "arjun.mehta@example.com",
		"jobTitle": "Backend Engineer",
		"summary": "Backend engineer building scalable microservices in Go and Python on AWS."
	},
	"experience": [{
		"company": "Razorpay",
		"position": "Software Engineer",
		"startDate": "2021-06",
		"current": true,
		"description": "responsible for payment APIs in Go\nreduced latency by 40% across 12 services"
	}],
	"education": [{"institution": "IIT Bombay", "degree": "B.Tech"}],
	"skills": [
		{"name": "Go", "level": "Expert"},
		{"name": "Python", "level": "Advanced"},
		{"name": "AWS", "level": "Intermediate"}
	]
}`

const sparseResume = `{"personalInfo": {"firstName": "Asha"}}`

// writeResume writes content to name inside dir and returns the path.
func writeResume(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// resetFlags restores every flag to its default so commands do not leak state between
// tests.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI in-process and returns what it wrote to stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("LOG_LEVEL", "")

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), err
}
