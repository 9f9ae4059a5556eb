package streams

import "github.com/autobrr/go-mediainfo-menu/internal/mediainfo"

// CountingEngine is an engine that also reports stream counts.
type CountingEngine interface {
	mediainfo.Engine
	mediainfo.Counter
}

// File groups the stream views of one opened media file.
type File struct {
	engine CountingEngine
	menus  []*Menu
}

func NewFile(engine CountingEngine) *File {
	count := engine.Count(mediainfo.StreamMenu)
	menus := make([]*Menu, 0, count)
	for i := 0; i < count; i++ {
		menus = append(menus, NewMenu(engine, i))
	}
	return &File{engine: engine, menus: menus}
}

// Ref is the General stream's complete name, if the engine has one.
func (f *File) Ref() string {
	return f.engine.Get(mediainfo.StreamGeneral, 0, "CompleteName")
}

func (f *File) Menus() []*Menu {
	return f.menus
}
