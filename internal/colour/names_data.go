package colour

// NamedColor pairs a human-readable colour name with its hex value.
// Display names keep their registry casing; lookups are
// case-insensitive.
type NamedColor struct {
	Name string `json:"name"`
	Hex  string `json:"hex"`
}

// registry is the display registry used for nearest-name lookup, search
// and hue filtering. Order matters: nearest-name ties resolve to the
// first entry scanned.
var registry = []NamedColor{
	{Name: "Black", Hex: "#000000"},
	{Name: "White", Hex: "#FFFFFF"},
	{Name: "Beige", Hex: "#F5F5DC"},
	{Name: "Gray", Hex: "#808080"},
	{Name: "Navy", Hex: "#000080"},
	{Name: "Denim", Hex: "#1560BD"},
	{Name: "Coral", Hex: "#FF7F50"},
	{Name: "Mustard", Hex: "#FFDB58"},
	{Name: "Olive", Hex: "#808000"},
	{Name: "Emerald", Hex: "#50C878"},
	{Name: "Plum", Hex: "#8E4585"},
	{Name: "Teal", Hex: "#008080"},
	{Name: "Maroon", Hex: "#800000"},
	{Name: "Gold", Hex: "#FFD700"},
	{Name: "Tan", Hex: "#D2B48C"},
	{Name: "Cream", Hex: "#FFFDD0"},
	{Name: "Rust", Hex: "#B7410E"},
	{Name: "Blush", Hex: "#DE5D83"},
	{Name: "Sky Blue", Hex: "#87CEEB"},
	{Name: "Khaki", Hex: "#C3B091"},
	{Name: "AliceBlue", Hex: "#F0F8FF"},
	{Name: "AntiqueWhite", Hex: "#FAEBD7"},
	{Name: "Aqua", Hex: "#00FFFF"},
	{Name: "Aquamarine", Hex: "#7FFFD4"},
	{Name: "Azure", Hex: "#F0FFFF"},
	{Name: "Bisque", Hex: "#FFE4C4"},
	{Name: "BlanchedAlmond", Hex: "#FFEBCD"},
	{Name: "Blue", Hex: "#0000FF"},
	{Name: "BlueViolet", Hex: "#8A2BE2"},
	{Name: "Brown", Hex: "#A52A2A"},
	{Name: "BurlyWood", Hex: "#DEB887"},
	{Name: "CadetBlue", Hex: "#5F9EA0"},
	{Name: "Chartreuse", Hex: "#7FFF00"},
	{Name: "Chocolate", Hex: "#D2691E"},
	{Name: "CornflowerBlue", Hex: "#6495ED"},
	{Name: "Crimson", Hex: "#DC143C"},
	{Name: "Cyan", Hex: "#00FFFF"},
	{Name: "DarkBlue", Hex: "#00008B"},
	{Name: "DarkCyan", Hex: "#008B8B"},
	{Name: "DarkGoldenRod", Hex: "#B8860B"},
	{Name: "DarkGray", Hex: "#A9A9A9"},
	{Name: "DarkGreen", Hex: "#006400"},
	{Name: "DarkKhaki", Hex: "#BDB76B"},
	{Name: "DarkMagenta", Hex: "#8B008B"},
	{Name: "DarkOliveGreen", Hex: "#556B2F"},
	{Name: "DarkOrange", Hex: "#FF8C00"},
	{Name: "DarkOrchid", Hex: "#9932CC"},
	{Name: "DarkRed", Hex: "#8B0000"},
	{Name: "DarkSalmon", Hex: "#E9967A"},
	{Name: "DarkSeaGreen", Hex: "#8FBC8F"},
	{Name: "DarkSlateBlue", Hex: "#483D8B"},
	{Name: "DarkSlateGray", Hex: "#2F4F4F"},
	{Name: "DarkTurquoise", Hex: "#00CED1"},
	{Name: "DarkViolet", Hex: "#9400D3"},
	{Name: "DeepPink", Hex: "#FF1493"},
	{Name: "DeepSkyBlue", Hex: "#00BFFF"},
	{Name: "DimGray", Hex: "#696969"},
	{Name: "DodgerBlue", Hex: "#1E90FF"},
	{Name: "FireBrick", Hex: "#B22222"},
	{Name: "ForestGreen", Hex: "#228B22"},
	{Name: "Fuchsia", Hex: "#FF00FF"},
	{Name: "Gainsboro", Hex: "#DCDCDC"},
	{Name: "GhostWhite", Hex: "#F8F8FF"},
	{Name: "GoldenRod", Hex: "#DAA520"},
	{Name: "Green", Hex: "#008000"},
	{Name: "GreenYellow", Hex: "#ADFF2F"},
	{Name: "HoneyDew", Hex: "#F0FFF0"},
	{Name: "HotPink", Hex: "#FF69B4"},
	{Name: "IndianRed", Hex: "#CD5C5C"},
	{Name: "Indigo", Hex: "#4B0082"},
	{Name: "Ivory", Hex: "#FFFFF0"},
	{Name: "Lavender", Hex: "#E6E6FA"},
	{Name: "LavenderBlush", Hex: "#FFF0F5"},
	{Name: "LawnGreen", Hex: "#7CFC00"},
	{Name: "LemonChiffon", Hex: "#FFFACD"},
	{Name: "LightBlue", Hex: "#ADD8E6"},
	{Name: "LightCoral", Hex: "#F08080"},
	{Name: "LightCyan", Hex: "#E0FFFF"},
	{Name: "LightGoldenRodYellow", Hex: "#FAFAD2"},
	{Name: "LightGray", Hex: "#D3D3D3"},
	{Name: "LightGreen", Hex: "#90EE90"},
	{Name: "LightPink", Hex: "#FFB6C1"},
	{Name: "LightSalmon", Hex: "#FFA07A"},
	{Name: "LightSeaGreen", Hex: "#20B2AA"},
	{Name: "LightSkyBlue", Hex: "#87CEFA"},
	{Name: "LightSlateGray", Hex: "#778899"},
	{Name: "LightSteelBlue", Hex: "#B0C4DE"},
	{Name: "LightYellow", Hex: "#FFFFE0"},
	{Name: "Lime", Hex: "#00FF00"},
	{Name: "LimeGreen", Hex: "#32CD32"},
	{Name: "Linen", Hex: "#FAF0E6"},
	{Name: "Magenta", Hex: "#FF00FF"},
	{Name: "MediumAquaMarine", Hex: "#66CDAA"},
	{Name: "MediumBlue", Hex: "#0000CD"},
	{Name: "MediumOrchid", Hex: "#BA55D3"},
	{Name: "MediumPurple", Hex: "#9370DB"},
	{Name: "MediumSeaGreen", Hex: "#3CB371"},
	{Name: "MediumSlateBlue", Hex: "#7B68EE"},
	{Name: "MediumSpringGreen", Hex: "#00FA9A"},
	{Name: "MediumTurquoise", Hex: "#48D1CC"},
	{Name: "MediumVioletRed", Hex: "#C71585"},
	{Name: "MidnightBlue", Hex: "#191970"},
	{Name: "MintCream", Hex: "#F5FFFA"},
	{Name: "MistyRose", Hex: "#FFE4E1"},
	{Name: "Moccasin", Hex: "#FFE4B5"},
	{Name: "NavajoWhite", Hex: "#FFDEAD"},
	{Name: "OldLace", Hex: "#FDF5E6"},
	{Name: "OliveDrab", Hex: "#6B8E23"},
	{Name: "Orange", Hex: "#FFA500"},
	{Name: "OrangeRed", Hex: "#FF4500"},
	{Name: "Orchid", Hex: "#DA70D6"},
	{Name: "PaleGoldenRod", Hex: "#EEE8AA"},
	{Name: "PaleGreen", Hex: "#98FB98"},
	{Name: "PaleTurquoise", Hex: "#AFEEEE"},
	{Name: "PaleVioletRed", Hex: "#DB7093"},
	{Name: "PapayaWhip", Hex: "#FFEFD5"},
	{Name: "PeachPuff", Hex: "#FFDAB9"},
	{Name: "Peru", Hex: "#CD853F"},
	{Name: "Pink", Hex: "#FFC0CB"},
	{Name: "PowderBlue", Hex: "#B0E0E6"},
	{Name: "Purple", Hex: "#800080"},
	{Name: "RebeccaPurple", Hex: "#663399"},
	{Name: "Red", Hex: "#FF0000"},
	{Name: "RosyBrown", Hex: "#BC8F8F"},
	{Name: "RoyalBlue", Hex: "#4169E1"},
	{Name: "SaddleBrown", Hex: "#8B4513"},
	{Name: "Salmon", Hex: "#FA8072"},
	{Name: "SandyBrown", Hex: "#F4A460"},
	{Name: "SeaGreen", Hex: "#2E8B57"},
	{Name: "SeaShell", Hex: "#FFF5EE"},
	{Name: "Sienna", Hex: "#A0522D"},
	{Name: "Silver", Hex: "#C0C0C0"},
	{Name: "SlateBlue", Hex: "#6A5ACD"},
	{Name: "SlateGray", Hex: "#708090"},
	{Name: "Snow", Hex: "#FFFAFA"},
	{Name: "SpringGreen", Hex: "#00FF7F"},
	{Name: "SteelBlue", Hex: "#4682B4"},
	{Name: "Thistle", Hex: "#D8BFD8"},
	{Name: "Tomato", Hex: "#FF6347"},
	{Name: "Turquoise", Hex: "#40E0D0"},
	{Name: "Violet", Hex: "#EE82EE"},
	{Name: "Wheat", Hex: "#F5DEB3"},
	{Name: "Yellow", Hex: "#FFFF00"},
	{Name: "YellowGreen", Hex: "#9ACD32"},
}

// wellKnownNames is the broader lowercase-name table (CSS3 plus common
// aliases) used by FindClosestName for exact-hex matching before
// falling back to a nearest-distance scan.
var wellKnownNames = []NamedColor{
	{Name: "white", Hex: "#FFFFFF"},
	{Name: "black", Hex: "#000000"},
	{Name: "red", Hex: "#FF0000"},
	{Name: "green", Hex: "#00FF00"},
	{Name: "blue", Hex: "#0000FF"},
	{Name: "yellow", Hex: "#FFFF00"},
	{Name: "cyan", Hex: "#00FFFF"},
	{Name: "magenta", Hex: "#FF00FF"},
	{Name: "aliceblue", Hex: "#F0F8FF"},
	{Name: "antiquewhite", Hex: "#FAEBD7"},
	{Name: "aqua", Hex: "#00FFFF"},
	{Name: "aquamarine", Hex: "#7FFFD4"},
	{Name: "azure", Hex: "#F0FFFF"},
	{Name: "beige", Hex: "#F5F5DC"},
	{Name: "bisque", Hex: "#FFE4C4"},
	{Name: "blanchedalmond", Hex: "#FFEBCD"},
	{Name: "blueviolet", Hex: "#8A2BE2"},
	{Name: "brown", Hex: "#A52A2A"},
	{Name: "burlywood", Hex: "#DEB887"},
	{Name: "cadetblue", Hex: "#5F9EA0"},
	{Name: "chartreuse", Hex: "#7FFF00"},
	{Name: "chocolate", Hex: "#D2691E"},
	{Name: "coral", Hex: "#FF7F50"},
	{Name: "cornflowerblue", Hex: "#6495ED"},
	{Name: "cornsilk", Hex: "#FFF8DC"},
	{Name: "crimson", Hex: "#DC143C"},
	{Name: "darkblue", Hex: "#00008B"},
	{Name: "darkcyan", Hex: "#008B8B"},
	{Name: "darkgoldenrod", Hex: "#B8860B"},
	{Name: "darkgray", Hex: "#A9A9A9"},
	{Name: "darkgreen", Hex: "#006400"},
	{Name: "darkkhaki", Hex: "#BDB76B"},
	{Name: "darkmagenta", Hex: "#8B008B"},
	{Name: "darkolivegreen", Hex: "#556B2F"},
	{Name: "darkorange", Hex: "#FF8C00"},
	{Name: "darkorchid", Hex: "#9932CC"},
	{Name: "darkred", Hex: "#8B0000"},
	{Name: "darksalmon", Hex: "#E9967A"},
	{Name: "darkseagreen", Hex: "#8FBC8F"},
	{Name: "darkslateblue", Hex: "#483D8B"},
	{Name: "darkslategray", Hex: "#2F4F4F"},
	{Name: "darkturquoise", Hex: "#00CED1"},
	{Name: "darkviolet", Hex: "#9400D3"},
	{Name: "deeppink", Hex: "#FF1493"},
	{Name: "deepskyblue", Hex: "#00BFFF"},
	{Name: "dimgray", Hex: "#696969"},
	{Name: "dodgerblue", Hex: "#1E90FF"},
	{Name: "firebrick", Hex: "#B22222"},
	{Name: "floralwhite", Hex: "#FFFAF0"},
	{Name: "forestgreen", Hex: "#228B22"},
	{Name: "fuchsia", Hex: "#FF00FF"},
	{Name: "gainsboro", Hex: "#DCDCDC"},
	{Name: "ghostwhite", Hex: "#F8F8FF"},
	{Name: "gold", Hex: "#FFD700"},
	{Name: "goldenrod", Hex: "#DAA520"},
	{Name: "gray", Hex: "#808080"},
	{Name: "greenyellow", Hex: "#ADFF2F"},
	{Name: "honeydew", Hex: "#F0FFF0"},
	{Name: "hotpink", Hex: "#FF69B4"},
	{Name: "indianred", Hex: "#CD5C5C"},
	{Name: "indigo", Hex: "#4B0082"},
	{Name: "ivory", Hex: "#FFFFF0"},
	{Name: "khaki", Hex: "#F0E68C"},
	{Name: "lavender", Hex: "#E6E6FA"},
	{Name: "lavenderblush", Hex: "#FFF0F5"},
	{Name: "lawngreen", Hex: "#7CFC00"},
	{Name: "lemonchiffon", Hex: "#FFFACD"},
	{Name: "lightblue", Hex: "#ADD8E6"},
	{Name: "lightcoral", Hex: "#F08080"},
	{Name: "lightcyan", Hex: "#E0FFFF"},
	{Name: "lightgoldenrodyellow", Hex: "#FAFAD2"},
	{Name: "lightgray", Hex: "#D3D3D3"},
	{Name: "lightgreen", Hex: "#90EE90"},
	{Name: "lightpink", Hex: "#FFB6C1"},
	{Name: "lightsalmon", Hex: "#FFA07A"},
	{Name: "lightseagreen", Hex: "#20B2AA"},
	{Name: "lightskyblue", Hex: "#87CEFA"},
	{Name: "lightslategray", Hex: "#778899"},
	{Name: "lightsteelblue", Hex: "#B0C4DE"},
	{Name: "lightyellow", Hex: "#FFFFE0"},
	{Name: "lime", Hex: "#00FF00"},
	{Name: "limegreen", Hex: "#32CD32"},
	{Name: "linen", Hex: "#FAF0E6"},
	{Name: "maroon", Hex: "#800000"},
	{Name: "mediumaquamarine", Hex: "#66CDAA"},
	{Name: "mediumblue", Hex: "#0000CD"},
	{Name: "mediumorchid", Hex: "#BA55D3"},
	{Name: "mediumpurple", Hex: "#9370DB"},
	{Name: "mediumseagreen", Hex: "#3CB371"},
	{Name: "mediumslateblue", Hex: "#7B68EE"},
	{Name: "mediumspringgreen", Hex: "#00FA9A"},
	{Name: "mediumturquoise", Hex: "#48D1CC"},
	{Name: "mediumvioletred", Hex: "#C71585"},
	{Name: "midnightblue", Hex: "#191970"},
	{Name: "mintcream", Hex: "#F5FFFA"},
	{Name: "mistyrose", Hex: "#FFE4E1"},
	{Name: "moccasin", Hex: "#FFE4B5"},
	{Name: "navajowhite", Hex: "#FFDEAD"},
	{Name: "navy", Hex: "#000080"},
	{Name: "oldlace", Hex: "#FDF5E6"},
	{Name: "olive", Hex: "#808000"},
	{Name: "olivedrab", Hex: "#6B8E23"},
	{Name: "orange", Hex: "#FFA500"},
	{Name: "orangered", Hex: "#FF4500"},
	{Name: "orchid", Hex: "#DA70D6"},
	{Name: "palegoldenrod", Hex: "#EEE8AA"},
	{Name: "palegreen", Hex: "#98FB98"},
	{Name: "paleturquoise", Hex: "#AFEEEE"},
	{Name: "palevioletred", Hex: "#DB7093"},
	{Name: "papayawhip", Hex: "#FFEFD5"},
	{Name: "peachpuff", Hex: "#FFDAB9"},
	{Name: "peru", Hex: "#CD853F"},
	{Name: "pink", Hex: "#FFC0CB"},
	{Name: "plum", Hex: "#DDA0DD"},
	{Name: "powderblue", Hex: "#B0E0E6"},
	{Name: "purple", Hex: "#800080"},
	{Name: "rebeccapurple", Hex: "#663399"},
	{Name: "rosybrown", Hex: "#BC8F8F"},
	{Name: "royalblue", Hex: "#4169E1"},
	{Name: "saddlebrown", Hex: "#8B4513"},
	{Name: "salmon", Hex: "#FA8072"},
	{Name: "sandybrown", Hex: "#F4A460"},
	{Name: "seagreen", Hex: "#2E8B57"},
	{Name: "seashell", Hex: "#FFF5EE"},
	{Name: "sienna", Hex: "#A0522D"},
	{Name: "silver", Hex: "#C0C0C0"},
	{Name: "skyblue", Hex: "#87CEEB"},
	{Name: "slateblue", Hex: "#6A5ACD"},
	{Name: "slategray", Hex: "#708090"},
	{Name: "snow", Hex: "#FFFAFA"},
	{Name: "springgreen", Hex: "#00FF7F"},
	{Name: "steelblue", Hex: "#4682B4"},
	{Name: "tan", Hex: "#D2B48C"},
	{Name: "teal", Hex: "#008080"},
	{Name: "thistle", Hex: "#D8BFD8"},
	{Name: "tomato", Hex: "#FF6347"},
	{Name: "turquoise", Hex: "#40E0D0"},
	{Name: "violet", Hex: "#EE82EE"},
	{Name: "wheat", Hex: "#F5DEB3"},
	{Name: "whitesmoke", Hex: "#F5F5F5"},
	{Name: "yellowgreen", Hex: "#9ACD32"},
}
