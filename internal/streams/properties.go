package streams

import "strconv"

// Property describes one Menu property for display purposes.
type Property struct {
	Name        string
	Category    string
	Description string
	value       func(*Menu) string
}

// Value renders the property of m as a string.
func (p Property) Value(m *Menu) string {
	return p.value(m)
}

const (
	categoryAllStreams    = "AllStreamsCommon"
	categoryGeneralToMenu = "GeneralVideoAudioTextImageMenuCommon"
	categoryTimed         = "GeneralVideoAudioTextMenu"
	categoryVideoToMenu   = "VideoAudioTextImageMenuCommon"
	categoryMenu          = "Menu"
)

// MenuProperties lists the Menu properties in display order.
var MenuProperties = []Property{
	{Name: "ID", Category: categoryAllStreams, Description: "The ID of this stream in the file.",
		value: func(m *Menu) string { return strconv.Itoa(m.ID()) }},
	{Name: "Format", Category: categoryAllStreams, Description: "The format or container of this file or stream.",
		value: (*Menu).Format},
	{Name: "FormatInfo", Category: categoryAllStreams, Description: "Format information for this container or stream.",
		value: (*Menu).FormatInfo},
	{Name: "FormatProfile", Category: categoryAllStreams, Description: "Format profile for this container or stream.",
		value: (*Menu).FormatProfile},
	{Name: "FormatVersion", Category: categoryAllStreams, Description: "Format version for this container or stream.",
		value: (*Menu).FormatVersion},
	{Name: "Title", Category: categoryAllStreams, Description: "The title of this container or stream.",
		value: (*Menu).Title},
	{Name: "UniqueId", Category: categoryAllStreams, Description: "This stream's or container's globally unique ID (GUID).",
		value: (*Menu).UniqueId},
	{Name: "CodecId", Category: categoryGeneralToMenu, Description: "Codec ID available from some codecs.",
		value: (*Menu).CodecId},
	{Name: "CodecCommonName", Category: categoryGeneralToMenu, Description: "Common name of the codec.",
		value: (*Menu).CodecCommonName},
	{Name: "Delay", Category: categoryTimed, Description: "Stream delay (e.g. to sync audio/video) in ms.",
		value: func(m *Menu) string { return strconv.Itoa(m.Delay()) }},
	{Name: "Duration", Category: categoryTimed, Description: "Duration of the stream in milliseconds.",
		value: func(m *Menu) string { return strconv.Itoa(m.Duration()) }},
	{Name: "Language", Category: categoryVideoToMenu, Description: "2-letter (if available) or 3-letter ISO code.",
		value: (*Menu).Language},
	{Name: "Chapters", Category: categoryMenu, Description: "Movie chapters.",
		value: func(m *Menu) string { return strconv.Itoa(m.Chapters().Len()) }},
}

// LookupProperty finds a Menu property by name.
func LookupProperty(name string) (Property, bool) {
	for _, p := range MenuProperties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}
