package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/scp-jp/scpjp-go"
	"github.com/scp-jp/scpjp-go/auditlog"
	"github.com/scp-jp/scpjp-go/linker"
	"github.com/scp-jp/scpjp-go/memberman"
)

var rootCmd = &cobra.Command{
	Use:   "scpjp",
	Short: "CLI for the SCP-JP member management and account linking APIs",
	Long: `scpjp drives the SCP-JP backend services from the command line.

Configuration comes from environment variables:
  SCPJP_MEMBER_API_URL / SCPJP_MEMBER_API_KEY   member management service
  SCPJP_LINKER_API_URL / SCPJP_LINKER_API_KEY   account linking service
  SCPJP_AUDIT_LOG_URL / SCPJP_AUDIT_LOG_APP / SCPJP_AUDIT_LOG_KEY
                                                audit log collector (optional)
  SCPJP_HTTP_TIMEOUT                            request timeout (default 30s)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// memberClient builds a member management client from the environment.
func memberClient() (*memberman.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.MemberURL == "" || cfg.MemberKey == "" {
		return nil, errors.New("SCPJP_MEMBER_API_URL and SCPJP_MEMBER_API_KEY must be set")
	}
	return memberman.NewClient(cfg.MemberURL, cfg.MemberKey,
		scpjp.WithHTTPClient(newHTTPClient(cfg.HTTPTimeout)))
}

// linkerClient builds an account linking client from the environment.
func linkerClient() (*linker.Client, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if cfg.LinkerURL == "" || cfg.LinkerKey == "" {
		return nil, errors.New("SCPJP_LINKER_API_URL and SCPJP_LINKER_API_KEY must be set")
	}
	return linker.NewClient(cfg.LinkerURL, cfg.LinkerKey,
		scpjp.WithHTTPClient(newHTTPClient(cfg.HTTPTimeout)))
}

// auditLogger returns the configured audit log client, or a no-op logger
// when no collector is configured.
func auditLogger() auditlog.Logger {
	cfg, err := loadConfig()
	if err != nil || cfg.AuditURL == "" {
		return auditlog.Nop{}
	}
	return auditlog.NewClient(cfg.AuditURL, cfg.AuditName, cfg.AuditKey,
		auditlog.WithHTTPClient(newHTTPClient(cfg.HTTPTimeout)))
}
