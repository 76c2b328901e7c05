// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"

	"objexport/cbuf"
	"objexport/cmd"
	"objexport/commandline"
	"objexport/conlog"
	"objexport/cvar"
	"objexport/cvars"
	"objexport/export"
	"objexport/filesystem"
	"objexport/mesh"
	"objexport/scene"
	"objexport/wavefront"
)

func main() {
	flag.Parse()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := configure(); err != nil {
		log.Fatalf("objexport: %v", err)
	}
	if err := run(ctx, flag.Args()); err != nil {
		log.Fatalf("objexport: %v", err)
	}
}

// configure applies the search path, runs the config script and then the
// -set overrides.
func configure() error {
	filesystem.UseBaseDir(commandline.BaseDirectory())
	for _, p := range commandline.SearchPaths() {
		if err := filesystem.AddSearchDir(p); err != nil {
			return errors.Wrap(err, "-path")
		}
	}
	if commandline.ConsoleDebug() {
		cvars.Developer.SetByString("1")
	}
	cb := newCommandBuffer()
	if f := commandline.ExecFile(); f != "" {
		cb.AddText("exec \"" + f + "\"\n")
	}
	if err := cb.Execute(); err != nil {
		return err
	}
	for _, s := range commandline.CvarOverrides() {
		if err := cvar.Set(s.Name, s.Value); err != nil {
			return errors.Wrap(err, "-set")
		}
	}
	return nil
}

func newCommandBuffer() *cbuf.CommandBuffer {
	cb := &cbuf.CommandBuffer{}
	cb.SetCommandExecutors([]cbuf.Efunc{
		execScript,
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return cmd.Execute(a)
		},
		func(_ *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
			return cvar.Execute(a)
		},
	})
	return cb
}

func execScript(cb *cbuf.CommandBuffer, a cmd.Arguments) (bool, error) {
	if !strings.EqualFold(a.Argv(0).String(), "exec") {
		return false, nil
	}
	if len(a.Args()) != 2 {
		conlog.Printf("exec <filename> : execute a script file\n")
		return true, nil
	}
	name := a.Argv(1).String()
	b, err := filesystem.ReadFile(name)
	if err != nil {
		return false, errors.Wrapf(err, "couldn't exec %s", name)
	}
	conlog.DPrintf("execing %s\n", name)
	cb.InsertText(string(b))
	return true, nil
}

func run(ctx context.Context, scenes []string) error {
	if len(scenes) == 0 {
		return errors.New("no scene files given")
	}
	var elements []*mesh.Element
	for _, n := range scenes {
		s, err := scene.Load(n)
		if err != nil {
			return err
		}
		elements = append(elements, s.Elements...)
	}
	return writeFiles(ctx, commandline.ObjFile(), commandline.MtlFile(), elements,
		cvars.ObjSettings(), cvars.ExportOptions())
}

func writeFiles(ctx context.Context, objPath, mtlPath string, elements []*mesh.Element,
	settings wavefront.Settings, opts export.Options) (err error) {
	objFile, err := os.Create(objPath)
	if err != nil {
		return err
	}
	defer closeFile(objFile, &err)
	mtlFile, err := os.Create(mtlPath)
	if err != nil {
		return err
	}
	defer closeFile(mtlFile, &err)

	ser := wavefront.NewSerializer(objFile, mtlFile, mtlPath, settings)
	if err := ser.Ready(); err != nil {
		return err
	}
	if err := ser.WriteHeader(); err != nil {
		return err
	}
	stats, err := export.Run(ctx, ser, elements, opts)
	if err != nil {
		return err
	}
	conlog.Printf("wrote %d elements (%d skipped), %d vertices, %d materials to %s\n",
		stats.Written, stats.Skipped, ser.VertexTotal(), ser.MaterialCount(), objPath)
	return nil
}

func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); cerr != nil && *err == nil {
		*err = cerr
	}
}
