package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"imgchars/logging"
	"imgchars/parallel"
	"imgchars/render"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
	"github.com/joho/godotenv"
)

type logConfig struct {
	Level string `help:"Log level: debug, info, warn, error" default:"info" env:"IMGCHARS_LOG_LEVEL"`
	File  string `help:"Also append logs to this file" env:"IMGCHARS_LOG_FILE"`
}

type cli struct {
	Config  string    `help:"Configuration file (.json, .yaml, .yml or .toml)" type:"path"`
	Log     logConfig `embed:"" prefix:"log-"`
	Workers int       `help:"Images converted in parallel when the source is a folder, 0 for one per CPU" default:"0" env:"IMGCHARS_WORKERS"`

	Convert render.CLICmd   `cmd:"" help:"Convert an image, or every image in a folder, into text"`
	Fonts   render.FontsCmd `cmd:"" help:"List fonts and their character cell aspect"`
	Ramps   render.RampsCmd `cmd:"" help:"List character ramps"`
}

func main() {
	// a missing .env file is fine
	_ = godotenv.Load()

	jsonPaths, yamlPaths, tomlPaths, err := configCandidatePaths(findUserConfig(os.Args[1:]))
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load configuration:", err)
		os.Exit(2)
	}

	var conf cli
	ctx := kong.Parse(&conf,
		kong.Name("imgchars"),
		kong.Description(Description()),
		kong.UsageOnError(),
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := logging.Setup(conf.Log.Level, conf.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to setup logger:", err)
		os.Exit(2)
	}

	pool := parallel.Start(conf.Workers)
	err = ctx.Run(logger, pool, render.Version(Version))
	pool.Wait()

	for _, c := range closeFiles {
		_ = c.Close()
	}
	ctx.FatalIfErrorf(err)
}

func findUserConfig(args []string) string {
	for i, a := range args {
		if v, ok := strings.CutPrefix(a, "--config="); ok {
			return v
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

// configCandidatePaths returns config files to try, lowest priority last.
// An explicit file replaces the default locations and must exist, since
// kong skips files it cannot open.
func configCandidatePaths(explicit string) (jsonPaths, yamlPaths, tomlPaths []string, err error) {
	var candidates []string
	if explicit != "" {
		info, err := os.Stat(explicit)
		if err != nil {
			return nil, nil, nil, err
		}
		if info.IsDir() {
			return nil, nil, nil, fmt.Errorf("%s is a directory", explicit)
		}
		switch strings.ToLower(filepath.Ext(explicit)) {
		case ".json", ".yaml", ".yml", ".toml":
		default:
			return nil, nil, nil, fmt.Errorf("unsupported config file type %q, should be .json, .yaml, .yml or .toml", filepath.Ext(explicit))
		}
		candidates = []string{explicit}
	} else {
		candidates = []string{"imgchars.json", "imgchars.yaml", "imgchars.yml", "imgchars.toml"}
		if dir, err := os.UserConfigDir(); err == nil {
			for _, name := range []string{"config.json", "config.yaml", "config.yml", "config.toml"} {
				candidates = append(candidates, filepath.Join(dir, "imgchars", name))
			}
		}
	}

	for _, p := range candidates {
		switch strings.ToLower(filepath.Ext(p)) {
		case ".json":
			jsonPaths = append(jsonPaths, p)
		case ".yaml", ".yml":
			yamlPaths = append(yamlPaths, p)
		case ".toml":
			tomlPaths = append(tomlPaths, p)
		}
	}
	return jsonPaths, yamlPaths, tomlPaths, nil
}
