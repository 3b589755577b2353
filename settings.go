package kittypal

// Settings is the optional tool configuration. Zero values mean "use the
// built-in default".
type Settings struct {
	// ConfigPath overrides kitty.conf discovery.
	ConfigPath string `toml:"config_path"`
	// BackupDir overrides the directory backups are saved under.
	BackupDir string `toml:"backup_dir"`
}
