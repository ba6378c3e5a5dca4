package sim

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// 模拟核心及其依赖的包不能引入窗口、音频或终端库，
// 否则无界面的服务端和测试环境需要 X11/ALSA 头文件才能构建。
var headlessPackages = []string{
	"../components",
	"../config",
	"../ecs",
	"../entities",
	"../game",
	"../sim",
	"../systems",
	"../utils",
	"../../internal/server",
}

var engineImports = []string{
	"github.com/hajimehoshi/ebiten",
	"github.com/gopxl/beep",
	"github.com/gdamore/tcell",
}

func TestCorePackagesStayHeadless(t *testing.T) {
	fset := token.NewFileSet()
	for _, dir := range headlessPackages {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("read %s: %v", dir, err)
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".go") {
				continue
			}
			path := filepath.Join(dir, e.Name())
			f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
			if err != nil {
				t.Fatalf("parse %s: %v", path, err)
			}
			for _, imp := range f.Imports {
				p, _ := strconv.Unquote(imp.Path.Value)
				for _, banned := range engineImports {
					if strings.HasPrefix(p, banned) {
						t.Errorf("%s imports %s", path, p)
					}
				}
			}
		}
	}
}
