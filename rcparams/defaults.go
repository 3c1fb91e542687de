// This file is part of mpltweaker.
//
// mpltweaker is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// mpltweaker is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with mpltweaker.  If not, see <https://www.gnu.org/licenses/>.

package rcparams

// the tableau colours as strings in the form expected by the default
// axes.prop_cycle
var defaultPropCycle = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// defaults returns a new map of the library default parameters
func defaults() map[string]Value {
	d := map[string]Value{
		// figure
		"figure.frameon":                Bool(true),
		"figure.constrained_layout.use": Bool(false),
		"figure.dpi":                    Float(100.0),
		"figure.figsize":                Pair(6.4, 4.8),
		"figure.facecolor":              String("white"),
		"figure.edgecolor":              String("white"),
		"figure.titlesize":              String("large"),
		"figure.titleweight":            String("normal"),
		"figure.labelsize":              String("large"),
		"figure.labelweight":            String("normal"),
		"figure.subplot.left":           Float(0.125),
		"figure.subplot.right":          Float(0.9),
		"figure.subplot.bottom":         Float(0.11),
		"figure.subplot.top":            Float(0.88),
		"figure.subplot.wspace":         Float(0.2),
		"figure.subplot.hspace":         Float(0.2),
		"savefig.transparent":           Bool(false),
		"savefig.format":                String("png"),
		"savefig.bbox":                  String("standard"),
		"animation.writer":              String("ffmpeg"),

		// axes
		"axes.facecolor":         String("white"),
		"axes.edgecolor":         String("black"),
		"axes.linewidth":         Float(0.8),
		"axes.spines.left":       Bool(true),
		"axes.spines.right":      Bool(true),
		"axes.spines.bottom":     Bool(true),
		"axes.spines.top":        Bool(true),
		"axes.grid":              Bool(false),
		"axes.grid.axis":         String("both"),
		"axes.grid.which":        String("major"),
		"polaraxes.grid":         Bool(true),
		"axes3d.grid":            Bool(true),
		"axes.titlecolor":        String("auto"),
		"axes.titlelocation":     String("center"),
		"axes.titlesize":         String("large"),
		"axes.titleweight":       String("normal"),
		"axes.titley":            Float(1.0),
		"axes.titlepad":          Float(6.0),
		"axes.labelcolor":        String("black"),
		"axes.labelsize":         String("medium"),
		"axes.labelweight":       String("normal"),
		"axes.labelpad":          Float(4.0),
		"xaxis.labellocation":    String("center"),
		"yaxis.labellocation":    String("center"),
		"axes3d.automargin":      Bool(false),
		"axes3d.xaxis.panecolor": Color(RGBA{0.95, 0.95, 0.95, 0.5}),
		"axes3d.yaxis.panecolor": Color(RGBA{0.9, 0.9, 0.9, 0.5}),
		"axes3d.zaxis.panecolor": Color(RGBA{0.925, 0.925, 0.925, 0.5}),
		"axes.unicode_minus":     Bool(true),
		"axes.xmargin":           Float(0.05),
		"axes.ymargin":           Float(0.05),
		"axes.zmargin":           Float(0.05),
		"axes.autolimit_mode":    String("data"),
		"axes.prop_cycle":        StringList(defaultPropCycle...),

		// grid
		"grid.color":     String("#b0b0b0"),
		"grid.linestyle": String("-"),
		"grid.linewidth": Float(0.8),
		"grid.alpha":     Float(1.0),

		// ticks
		"xtick.top":           Bool(false),
		"xtick.bottom":        Bool(true),
		"ytick.left":          Bool(true),
		"ytick.right":         Bool(false),
		"xtick.color":         String("black"),
		"ytick.color":         String("black"),
		"xtick.labeltop":      Bool(false),
		"xtick.labelbottom":   Bool(true),
		"ytick.labelleft":     Bool(true),
		"ytick.labelright":    Bool(false),
		"xtick.labelcolor":    String("inherit"),
		"ytick.labelcolor":    String("inherit"),
		"xtick.labelsize":     String("medium"),
		"ytick.labelsize":     String("medium"),
		"xtick.direction":     String("out"),
		"ytick.direction":     String("out"),
		"xtick.major.size":    Float(3.5),
		"xtick.major.width":   Float(0.8),
		"xtick.major.pad":     Float(3.5),
		"xtick.minor.size":    Float(2.0),
		"xtick.minor.width":   Float(0.6),
		"xtick.minor.pad":     Float(3.4),
		"ytick.major.size":    Float(3.5),
		"ytick.major.width":   Float(0.8),
		"ytick.major.pad":     Float(3.5),
		"ytick.minor.size":    Float(2.0),
		"ytick.minor.width":   Float(0.6),
		"ytick.minor.pad":     Float(3.4),
		"xtick.minor.visible": Bool(false),
		"ytick.minor.visible": Bool(false),

		// lines, markers and patches
		"lines.color":           String("C0"),
		"lines.linewidth":       Float(1.5),
		"lines.linestyle":       String("-"),
		"lines.antialiased":     Bool(true),
		"lines.marker":          String("None"),
		"lines.markerfacecolor": String("auto"),
		"lines.markeredgecolor": String("auto"),
		"lines.markeredgewidth": Float(1.0),
		"lines.markersize":      Float(6.0),
		"markers.fillstyle":     String("full"),
		"patch.facecolor":       String("C0"),
		"patch.edgecolor":       String("black"),
		"patch.force_edgecolor": Bool(false),
		"patch.linewidth":       Float(1.0),
		"patch.antialiased":     Bool(true),
		"hatch.color":           String("black"),
		"hatch.linewidth":       Float(1.0),

		// legend
		"legend.facecolor":     String("inherit"),
		"legend.edgecolor":     String("0.8"),
		"legend.labelcolor":    String("black"),
		"legend.loc":           String("best"),
		"legend.fontsize":      String("medium"),
		"legend.frameon":       Bool(true),
		"legend.shadow":        Bool(false),
		"legend.fancybox":      Bool(true),
		"legend.framealpha":    Float(0.8),
		"legend.numpoints":     Int(1),
		"legend.scatterpoints": Int(1),
		"legend.markerscale":   Float(1.0),
		"legend.borderpad":     Float(0.4),
		"legend.borderaxespad": Float(0.5),
		"legend.labelspacing":  Float(0.5),
		"legend.handlelength":  Float(2.0),
		"legend.handleheight":  Float(0.7),
		"legend.handletextpad": Float(0.8),
		"legend.columnspacing": Float(2.0),

		// image
		"image.aspect":          String("equal"),
		"image.interpolation":   String("nearest"),
		"image.cmap":            String("viridis"),
		"image.lut":             Int(256),
		"image.origin":          String("upper"),
		"image.resample":        Bool(true),
		"image.composite_image": Bool(true),

		// boxplot
		"boxplot.notch":                      Bool(false),
		"boxplot.vertical":                   Bool(true),
		"boxplot.patchartist":                Bool(false),
		"boxplot.showmeans":                  Bool(false),
		"boxplot.showcaps":                   Bool(true),
		"boxplot.showbox":                    Bool(true),
		"boxplot.showfliers":                 Bool(true),
		"boxplot.meanline":                   Bool(false),
		"boxplot.whiskers":                   Float(1.5),
		"boxplot.flierprops.marker":          String("o"),
		"boxplot.flierprops.color":           String("black"),
		"boxplot.flierprops.markerfacecolor": String("none"),
		"boxplot.flierprops.markeredgecolor": String("black"),
		"boxplot.flierprops.markeredgewidth": Float(1.0),
		"boxplot.flierprops.markersize":      Float(6.0),
		"boxplot.flierprops.linestyle":       String("none"),
		"boxplot.flierprops.linewidth":       Float(1.0),
		"boxplot.boxprops.color":             String("black"),
		"boxplot.boxprops.linewidth":         Float(1.0),
		"boxplot.boxprops.linestyle":         String("-"),
		"boxplot.whiskerprops.color":         String("black"),
		"boxplot.whiskerprops.linewidth":     Float(1.0),
		"boxplot.whiskerprops.linestyle":     String("-"),
		"boxplot.capprops.color":             String("black"),
		"boxplot.capprops.linewidth":         Float(1.0),
		"boxplot.capprops.linestyle":         String("-"),
		"boxplot.medianprops.color":          String("C1"),
		"boxplot.medianprops.linewidth":      Float(1.0),
		"boxplot.medianprops.linestyle":      String("-"),
		"boxplot.meanprops.color":            String("C2"),
		"boxplot.meanprops.linewidth":        Float(1.0),
		"boxplot.meanprops.linestyle":        String("--"),
		"boxplot.meanprops.marker":           String("^"),
		"boxplot.meanprops.markerfacecolor":  String("C2"),
		"boxplot.meanprops.markeredgecolor":  String("C2"),
		"boxplot.meanprops.markersize":       Float(6.0),

		// text and fonts
		"font.family":      StringList("sans-serif"),
		"font.style":       String("normal"),
		"font.variant":     String("normal"),
		"font.weight":      String("normal"),
		"font.size":        Float(10.0),
		"mathtext.fontset": String("dejavusans"),
		"text.color":       String("black"),
		"text.antialiased": Bool(true),
		"text.parse_math":  Bool(true),
		"text.hinting":     String("force_autohint"),

		"font.serif": StringList(
			"DejaVu Serif", "Bitstream Vera Serif", "Computer Modern Roman",
			"New Century Schoolbook", "Century Schoolbook L", "Utopia",
			"ITC Bookman", "Bookman", "Nimbus Roman No9 L", "Times New Roman",
			"Times", "Palatino", "Charter", "serif",
		),
		"font.sans-serif": StringList(
			"DejaVu Sans", "Bitstream Vera Sans", "Computer Modern Sans Serif",
			"Lucida Grande", "Verdana", "Geneva", "Lucid", "Arial", "Helvetica",
			"Avant Garde", "sans-serif",
		),
		"font.cursive": StringList(
			"Apple Chancery", "Textile", "Zapf Chancery", "Sand", "Script MT",
			"Felipa", "Comic Neue", "Comic Sans MS", "cursive",
		),
		"font.fantasy": StringList(
			"Chicago", "Charcoal", "Impact", "Western", "xkcd script", "fantasy",
		),
		"font.monospace": StringList(
			"DejaVu Sans Mono", "Bitstream Vera Sans Mono",
			"Computer Modern Typewriter", "Andale Mono", "Nimbus Mono L",
			"Courier New", "Courier", "Fixed", "Terminal", "monospace",
		),
	}
	return d
}
