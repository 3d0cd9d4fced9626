package lib

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli"
	"gopkg.in/yaml.v3"
)

// StartParams параметры команды start, пустые значения не переопределяют конфигурацию
type StartParams struct {
	Config, Port, Basename, Target, Static string
}

// RunServiceFuncCLI обрабатываем параметры с консоли
// start вызывает переданную функцию, остальные команды выполняются на месте и пишут в out
func RunServiceFuncCLI(ctx context.Context, args []string, out io.Writer, funcStart func(ctx context.Context, p StartParams) error) error {
	if out == nil {
		out = os.Stdout
	}

	appCLI := cli.NewApp()
	appCLI.Name = "onlyflow"
	appCLI.Usage = "OnlyFlow front gateway"
	appCLI.Writer = out
	appCLI.Commands = []cli.Command{
		{
			Name: "start", ShortName: "",
			Usage: "Start gateway: static UI, API proxy, app-config",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:   "config, c",
					Usage:  "Название файла конфигурации (пусто - только переменные окружения)",
					EnvVar: "ONLYFLOW_CONFIG",
					Value:  "",
				},
				cli.StringFlag{
					Name:  "port, p",
					Usage: "Порт, на котором запустить шлюз",
				},
				cli.StringFlag{
					Name:  "basename, b",
					Usage: "Префикс, под которым отдается приложение",
				},
				cli.StringFlag{
					Name:  "target, t",
					Usage: "Адрес бекенда, на который проксируется API",
				},
				cli.StringFlag{
					Name:  "static, s",
					Usage: "Директория со собранным фронтендом",
				},
			},
			Action: func(c *cli.Context) error {
				return funcStart(ctx, StartParams{
					Config:   c.String("config"),
					Port:     c.String("port"),
					Basename: c.String("basename"),
					Target:   c.String("target"),
					Static:   c.String("static"),
				})
			},
		},
		{
			Name: "join", ShortName: "j",
			Usage:     "Join path segments",
			ArgsUsage: "<parts...>",
			Action: func(c *cli.Context) error {
				_, err := fmt.Fprintf(out, "%q\n", JoinPaths(c.Args()...))
				return err
			},
		},
		{
			Name: "routes", ShortName: "r",
			Usage: "Print routes derived from basename",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "basename, b",
					Usage: "Префикс приложения",
					Value: DefaultBasename,
				},
				cli.StringFlag{
					Name:  "format, f",
					Usage: "text, json или yaml",
					Value: "text",
				},
			},
			Action: func(c *cli.Context) error {
				return PrintRoutes(out, NewRoutes(c.String("basename")), c.String("format"))
			},
		},
		{
			Name: "widget", ShortName: "w",
			Usage: "Print embed snippet for a flow",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "host",
					Usage: "Схема и хост интерфейса",
					Value: fmt.Sprintf("http://localhost:%d", DefaultPort),
				},
				cli.StringFlag{
					Name:  "basename, b",
					Usage: "Префикс приложения",
					Value: DefaultBasename,
				},
				cli.StringFlag{
					Name:  "flow-id",
					Usage: "Идентификатор флоу",
				},
				cli.StringFlag{
					Name:  "flow-name",
					Usage: "Название флоу (заголовок окна)",
				},
				cli.BoolFlag{
					Name:  "auth",
					Usage: "Флоу требует авторизации (api_key не добавляется)",
				},
			},
			Action: func(c *cli.Context) error {
				code, err := WidgetCode(WidgetParams{
					FlowID:   c.String("flow-id"),
					FlowName: c.String("flow-name"),
					IsAuth:   c.Bool("auth"),
					Host:     c.String("host"),
					Basename: c.String("basename"),
				})
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, code)
				return err
			},
		},
	}

	return appCLI.Run(args)
}

// PrintRoutes выводит маршруты в указанном формате
func PrintRoutes(w io.Writer, r Routes, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	case "", "text":
		rows := [][2]string{
			{"BASENAME", r.BaseName},
			{"BASE_URL_API", r.BaseURLAPI},
			{"BASE_URL_API_V2", r.BaseURLAPIv2},
			{"HEALTH_URL", r.HealthURL},
			{"HEALTH_CHECK_URL", r.HealthCheckURL},
			{"API_ROUTES", strings.Join(r.APIRoutes, ", ")},
			{"DOCS_LINK", r.DocsLink},
		}
		for _, row := range rows {
			if _, err := fmt.Fprintf(w, "%-17s %q\n", row[0]+":", row[1]); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (text, json, yaml)", format)
	}
}
