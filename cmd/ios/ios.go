package emuios

import (
	ios "github.com/user-none/eblitui-ios"
	"github.com/user-none/emarc/adapter"
)

// board picks the machine the framework runs. Set it at link time with
// -ldflags "-X github.com/user-none/emarc/cmd/ios.board=bogeyman".
var board = "dogfgt"

func init() {
	m, ok := adapter.Lookup(board)
	if !ok {
		m = adapter.DogFight
	}
	ios.RegisterFactory(adapter.NewFactory(m))
}

// Re-export bridge functions for gomobile binding

func Init(path string, regionCode int) bool { return ios.Init(path, regionCode) }
func Close()                                { ios.Close() }
func RunFrame()                             { ios.RunFrame() }
func GetFrameData() []byte                  { return ios.GetFrameData() }
func FrameWidth() int                       { return ios.FrameWidth() }
func FrameStride() int                      { return ios.FrameStride() }
func FrameHeight() int                      { return ios.FrameHeight() }
func SystemInfoJSON() string                { return ios.SystemInfoJSON() }
func GetFPS() int                           { return ios.GetFPS() }
func HasSaveStates() bool                   { return ios.HasSaveStates() }
func SaveState() bool                       { return ios.SaveState() }
func StateLen() int                         { return ios.StateLen() }
func StateByte(i int) int                   { return ios.StateByte(i) }
func LoadState(data []byte) bool            { return ios.LoadState(data) }
func GetCRC32FromPath(path string) int64    { return ios.GetCRC32FromPath(path) }
