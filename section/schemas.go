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

package section

import (
	"github.com/jetsetilly/mpltweaker/entry"
	"github.com/jetsetilly/mpltweaker/rcparams"
)

// option lists shared by more than one entry
var (
	fontSizes           = []string{"xx-small", "x-small", "small", "medium", "large", "x-large", "xx-large"}
	relativeSizes       = []string{"small", "medium", "large"}
	weights             = []string{"normal", "bold"}
	horizontalLocations = []string{"left", "center", "right"}
	lineStyles          = []string{"-", "--", "-.", ":"}

	// boxplot properties allow a line style of none
	propLineStyles = []string{"none", "-", "--", "-.", ":"}
	propMarkers    = []string{"o", ".", "^", "v", "<", ">", "8", "s", "p", "P", "*", "h", "H", "X", "D", "d"}
)

// All returns every section in panel order.
func All(store rcparams.Store) []*Section {
	return []*Section{
		Figure(store),
		Axes(store),
		Ticks(store),
		Lines(store),
		Legend(store),
		Text(store),
		Boxplot(store),
		Image(store),
	}
}

// Figure returns the section for the figure and its subplot layout. The
// savefig and animation parameters are also included.
func Figure(store rcparams.Store) *Section {
	return NewSection("Figure",
		entry.NewBool(store, "frame on", "figure.frameon", true),
		entry.NewBool(store, "constrained layout", "figure.constrained_layout.use", false),
		entry.NewFloat(store, "DPI", "figure.dpi", 100.0, entry.Between(50.0, 1200.0), 2.0, 50.0, "%.1f"),
		entry.NewFloatPair(store, "figsize", "figure.figsize", [2]float64{6.4, 4.8}, entry.Between(0.0, 100.0), "%.3f"),
		entry.NewColor(store, "face color", "figure.facecolor"),
		entry.NewColor(store, "edge color", "figure.edgecolor", entry.OnSameLine),
		entry.NewEnum(store, "title size", "figure.titlesize", 3, fontSizes),
		entry.NewEnum(store, "title weight", "figure.titleweight", 0, weights),
		entry.NewEnum(store, "label size", "figure.labelsize", 3, fontSizes),
		entry.NewEnum(store, "label weight", "figure.labelweight", 0, weights),
		entry.NewSeparator("Subplot"),
		entry.NewFloat(store, "left", "figure.subplot.left", 0.125, entry.Between(0.0, 1.0), 0.005, 0.05, "%.4f"),
		entry.NewFloat(store, "right", "figure.subplot.right", 0.9, entry.Between(0.0, 1.0), 0.005, 0.05, "%.4f"),
		entry.NewFloat(store, "bottom", "figure.subplot.bottom", 0.11, entry.Between(0.0, 1.0), 0.005, 0.05, "%.4f"),
		entry.NewFloat(store, "top", "figure.subplot.top", 0.88, entry.Between(0.0, 1.0), 0.005, 0.05, "%.4f"),
		entry.NewFloat(store, "wspace", "figure.subplot.wspace", 0.2, entry.Between(-1.0, 2.0), 0.01, 0.1, "%.4f"),
		entry.NewFloat(store, "hspace", "figure.subplot.hspace", 0.2, entry.Between(-1.0, 2.0), 0.01, 0.1, "%.4f"),
		entry.NewSeparator("Misc"),
		entry.NewBool(store, "savefig transparent", "savefig.transparent", false),
		entry.NewEnum(store, "savefig format", "savefig.format", 0, []string{"png", "jpg", "jpeg", "pdf", "svg"}),
		entry.NewEnum(store, "savefig bbox", "savefig.bbox", 1, []string{"tight", "standard"}),
		entry.NewEnum(store, "animation writer", "animation.writer", 0, []string{"ffmpeg", "ffmpeg_file", "imagemagick", "imagemagick_file", "html", "pillow"}),
	)
}

// Axes returns the section for axes parameters.
func Axes(store rcparams.Store) *Section {
	return NewSection("Axes",
		entry.NewColor(store, "face", "axes.facecolor"),
		entry.NewColor(store, "edge", "axes.edgecolor", entry.OnSameLine),
		entry.NewSeparator("Spines"),
		entry.NewFloat(store, "spines width", "axes.linewidth", 1.5, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewBool(store, "left", "axes.spines.left", true),
		entry.NewBool(store, "right", "axes.spines.right", true, entry.OnSameLine),
		entry.NewBool(store, "bottom", "axes.spines.bottom", true, entry.OnSameLine),
		entry.NewBool(store, "top", "axes.spines.top", true, entry.OnSameLine),
		entry.NewSeparator("Grid"),
		entry.NewColor(store, "color", "grid.color"),
		entry.NewBool(store, "grid", "axes.grid", false),
		entry.NewBool(store, "polar axes grid", "polaraxes.grid", true, entry.OnSameLine),
		entry.NewBool(store, "3D axes grid", "axes3d.grid", true, entry.OnSameLine),
		entry.NewEnum(store, "axis", "axes.grid.axis", 2, []string{"x", "y", "both"}),
		entry.NewEnum(store, "which", "axes.grid.which", 2, []string{"major", "minor", "both"}),
		entry.NewEnum(store, "linestyle", "grid.linestyle", 0, lineStyles),
		entry.NewFloat(store, "linewidth", "grid.linewidth", 0.8, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewFloat(store, "alpha", "grid.alpha", 0.5, entry.Between(0.0, 1.0), 0.05, 0.1, "%.2f"),
		entry.NewSeparator("Title"),
		entry.NewColor(store, "color##title", "axes.titlecolor"),
		entry.NewEnum(store, "location", "axes.titlelocation", 0, horizontalLocations),
		entry.NewEnum(store, "size", "axes.titlesize", 0, relativeSizes),
		entry.NewEnum(store, "weight", "axes.titleweight", 0, weights),
		entry.NewFloat(store, "title y", "axes.titley", 1.1, entry.Between(-1.0, 2.0), 0.01, 0.1, "%.3f"),
		entry.NewFloat(store, "title pad", "axes.titlepad", 6.0, entry.Between(-10.0, 20.0), 0.1, 1.0, "%.3f"),
		entry.NewSeparator("Label"),
		entry.NewColor(store, "color##label", "axes.labelcolor"),
		entry.NewEnum(store, "label size", "axes.labelsize", 0, relativeSizes),
		entry.NewEnum(store, "label weight", "axes.labelweight", 0, weights),
		entry.NewFloat(store, "label pad", "axes.labelpad", 6.0, entry.Between(-10.0, 20.0), 0.1, 1.0, "%.3f"),
		entry.NewEnum(store, "x label location", "xaxis.labellocation", 1, horizontalLocations),
		entry.NewEnum(store, "y label location", "yaxis.labellocation", 1, []string{"top", "center", "bottom"}),
		entry.NewSeparator("Axes 3d"),
		entry.NewBool(store, "automargin", "axes3d.automargin", false),
		entry.NewColor(store, "xaxis pane", "axes3d.xaxis.panecolor"),
		entry.NewColor(store, "yaxis pane", "axes3d.yaxis.panecolor", entry.OnSameLine),
		entry.NewColor(store, "zaxis pane", "axes3d.zaxis.panecolor", entry.OnSameLine),
		entry.NewSeparator("Misc"),
		entry.NewBool(store, "unicode minus", "axes.unicode_minus", true),
		entry.NewFloat(store, "x margin", "axes.xmargin", 0.05, entry.Between(0.0, 0.5), 0.01, 0.1, "%.3f"),
		entry.NewFloat(store, "y margin", "axes.ymargin", 0.05, entry.Between(0.0, 0.5), 0.01, 0.1, "%.3f"),
		entry.NewFloat(store, "z margin", "axes.zmargin", 0.05, entry.Between(0.0, 0.5), 0.01, 0.1, "%.3f"),
		entry.NewEnum(store, "autolimit mode", "axes.autolimit_mode", 0, []string{"data", "round_numbers"}),
	)
}

// Ticks returns the section for tick parameters. The size, width and pad
// entries are bound to the x axis keys only.
func Ticks(store rcparams.Store) *Section {
	return NewSection("Ticks",
		entry.NewSeparator("Tick line"),
		entry.NewBool(store, "x top", "xtick.top", false),
		entry.NewBool(store, "x bottom", "xtick.bottom", true, entry.OnSameLine),
		entry.NewBool(store, "y left", "ytick.left", true, entry.OnSameLine),
		entry.NewBool(store, "y right", "ytick.right", false, entry.OnSameLine),
		entry.NewColor(store, "x color", "xtick.color"),
		entry.NewColor(store, "y color", "ytick.color", entry.OnSameLine),
		entry.NewSeparator("Tick Label"),
		entry.NewBool(store, "x label top", "xtick.labeltop", false),
		entry.NewBool(store, "x label bottom", "xtick.labelbottom", true, entry.OnSameLine),
		entry.NewBool(store, "y label left", "ytick.labelleft", true, entry.OnSameLine),
		entry.NewBool(store, "y label right", "ytick.labelright", false, entry.OnSameLine),
		entry.NewColor(store, "x label color", "xtick.labelcolor"),
		entry.NewColor(store, "y label color", "ytick.labelcolor", entry.OnSameLine),
		entry.NewSeparator("Major tick"),
		entry.NewFloat(store, "major size", "xtick.major.size", 3.5, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewFloat(store, "major width", "xtick.major.width", 0.8, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewFloat(store, "major pad", "xtick.major.pad", 3.5, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewSeparator("Minor tick"),
		entry.NewFloat(store, "minor size", "xtick.minor.size", 2.0, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewFloat(store, "minor width", "xtick.minor.width", 0.6, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewFloat(store, "minor pad", "xtick.minor.pad", 3.5, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewBool(store, "x visible", "xtick.minor.visible", true),
		entry.NewBool(store, "y visible", "ytick.minor.visible", true, entry.OnSameLine),
	)
}

// Lines returns the section for lines, markers, patches and hatching.
func Lines(store rcparams.Store) *Section {
	return NewSection("Lines",
		entry.NewSeparator("Line"),
		entry.NewColor(store, "color", "lines.color"),
		entry.NewFloat(store, "line width", "lines.linewidth", 1.5, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewEnum(store, "line style", "lines.linestyle", 0, lineStyles),
		entry.NewBool(store, "antialiased", "lines.antialiased", true),
		entry.NewSeparator("Marker"),
		entry.NewColor(store, "facecolor", "lines.markerfacecolor"),
		entry.NewColor(store, "edge color", "lines.markeredgecolor", entry.OnSameLine),
		entry.NewMarker(store, "marker", "lines.marker"),
		entry.NewFloat(store, "marker edge width", "lines.markeredgewidth", 1.0, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewFloat(store, "marker size", "lines.markersize", 6.0, entry.Between(0.0, 50.0), 0.5, 5.0, "%.3f"),
		entry.NewEnum(store, "markers fillstyle", "markers.fillstyle", 0, []string{"full", "left", "right", "bottom", "top", "none"}),
		entry.NewSeparator("Patch"),
		entry.NewColor(store, "facecolor##patch", "patch.facecolor"),
		entry.NewColor(store, "edge color##patch", "patch.edgecolor", entry.OnSameLine),
		entry.NewBool(store, "patch force edgecolor", "patch.force_edgecolor", false, entry.OnSameLine),
		entry.NewFloat(store, "patch line width", "patch.linewidth", 1.0, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
		entry.NewBool(store, "patch antialiased", "patch.antialiased", true),
		entry.NewSeparator("Hatch"),
		entry.NewColor(store, "hatch color", "hatch.color"),
		entry.NewFloat(store, "hatch line width", "hatch.linewidth", 1.0, entry.Between(0.0, 10.0), 0.1, 1.0, "%.3f"),
	)
}

// Legend returns the section for legend parameters.
func Legend(store rcparams.Store) *Section {
	return NewSection("Legend",
		entry.NewColor(store, "face color", "legend.facecolor"),
		entry.NewColor(store, "edge color", "legend.edgecolor", entry.OnSameLine),
		entry.NewColor(store, "label color", "legend.labelcolor", entry.OnSameLine),
		entry.NewEnum(store, "legend location", "legend.loc", 0, []string{"best", "upper right", "upper left", "lower left", "lower right", "right", "center left", "center right", "lower center", "upper center", "center"}),
		entry.NewEnum(store, "font size", "legend.fontsize", 0, fontSizes),
		entry.NewSeparator("Frame"),
		entry.NewBool(store, "frame on", "legend.frameon", true),
		entry.NewBool(store, "shadow", "legend.shadow", false, entry.OnSameLine),
		entry.NewBool(store, "fancy box", "legend.fancybox", true, entry.OnSameLine),
		entry.NewFloat(store, "frame alpha", "legend.framealpha", 1.0, entry.Between(0.0, 1.0), 0.1, 0.5, "%.3f"),
		entry.NewSeparator("Marker"),
		entry.NewInt(store, "number of points", "legend.numpoints", 1, entry.Between(1, 5), 1, 1),
		entry.NewInt(store, "scatter points", "legend.scatterpoints", 1, entry.Between(1, 5), 1, 1),
		entry.NewFloat(store, "marker scale", "legend.markerscale", 1.0, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
		entry.NewSeparator("Layout"),
		entry.NewFloat(store, "border pad", "legend.borderpad", 0.4, entry.Between(0.0, 2.0), 0.1, 0.1, "%.3f"),
		entry.NewFloat(store, "border axes pad", "legend.borderaxespad", 0.5, entry.Between(0.0, 2.0), 0.1, 0.1, "%.3f"),
		entry.NewFloat(store, "label spacing", "legend.labelspacing", 0.5, entry.Between(0.0, 3.0), 0.1, 0.1, "%.3f"),
		entry.NewFloat(store, "handle length", "legend.handlelength", 2.0, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
		entry.NewFloat(store, "handle height", "legend.handleheight", 0.7, entry.Between(0.0, 3.0), 0.1, 0.1, "%.3f"),
		entry.NewFloat(store, "handle text pad", "legend.handletextpad", 0.8, entry.Between(0.0, 2.0), 0.1, 0.1, "%.3f"),
		entry.NewFloat(store, "column spacing", "legend.columnspacing", 2.0, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
	)
}

// Text returns the section for font and text parameters.
func Text(store rcparams.Store) *Section {
	return NewSection("Text",
		entry.NewSeparator("Font"),
		entry.NewEnum(store, "font family", "font.family", 0, []string{"serif", "sans-serif", "cursive", "fantasy", "monospace"}),
		entry.NewEnum(store, "font style", "font.style", 0, []string{"normal", "italic", "oblique"}),
		entry.NewEnum(store, "font variant", "font.variant", 0, []string{"normal", "small-caps"}),
		entry.NewEnum(store, "font weight", "font.weight", 0, []string{"normal", "bold", "heavy", "light", "medium", "semibold"}),
		entry.NewFloat(store, "font size", "font.size", 12.0, entry.Between(0.0, 50.0), 0.5, 5.0, "%.3f"),
		entry.NewSeparator("LaTeX"),
		entry.NewEnum(store, "mathtext fontset", "mathtext.fontset", 0, []string{"dejavusans", "dejavuserif", "cm", "stix", "stixsans", "custom"}),
		entry.NewSeparator("Text"),
		entry.NewColor(store, "text color", "text.color"),
		entry.NewBool(store, "antialiased", "text.antialiased", true, entry.OnSameLine),
		entry.NewBool(store, "parse math", "text.parse_math", true, entry.OnSameLine),
		entry.NewEnum(store, "text hinting", "text.hinting", 0, []string{"default", "no_autohint", "force_autohint", "no_hinting"}),
	)
}

// Boxplot returns the section for boxplot parameters.
func Boxplot(store rcparams.Store) *Section {
	return NewSection("Boxplot",
		entry.NewBool(store, "notch", "boxplot.notch", false),
		entry.NewBool(store, "vertical", "boxplot.vertical", true, entry.OnSameLine),
		entry.NewBool(store, "patch artist", "boxplot.patchartist", true, entry.OnSameLine),
		entry.NewBool(store, "show means", "boxplot.showmeans", false),
		entry.NewBool(store, "show caps", "boxplot.showcaps", true, entry.OnSameLine),
		entry.NewBool(store, "show box", "boxplot.showbox", true, entry.OnSameLine),
		entry.NewBool(store, "show fliers", "boxplot.showfliers", true, entry.OnSameLine),
		entry.NewBool(store, "mean line", "boxplot.meanline", false, entry.OnSameLine),
		entry.NewFloat(store, "whiskers", "boxplot.whiskers", 1.5, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
		entry.NewSeparator("Flier Properties"),
		entry.NewEnum(store, "flier marker", "boxplot.flierprops.marker", 0, propMarkers),
		entry.NewColor(store, "flier color", "boxplot.flierprops.color"),
		entry.NewColor(store, "flier marker facecolor", "boxplot.flierprops.markerfacecolor", entry.OnSameLine),
		entry.NewColor(store, "flier marker edgecolor", "boxplot.flierprops.markeredgecolor", entry.OnSameLine),
		entry.NewFloat(store, "flier marker edgewidth", "boxplot.flierprops.markeredgewidth", 1.0, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
		entry.NewFloat(store, "flier marker size", "boxplot.flierprops.markersize", 6.0, entry.Between(0.0, 20.0), 1.0, 1.0, "%.3f"),
		entry.NewEnum(store, "flier linestyle", "boxplot.flierprops.linestyle", 0, propLineStyles),
		entry.NewFloat(store, "flier line width", "boxplot.flierprops.linewidth", 1.0, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
		entry.NewSeparator("Box Properties"),
		entry.NewColor(store, "box color", "boxplot.boxprops.color"),
		entry.NewFloat(store, "box line width", "boxplot.boxprops.linewidth", 1.0, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
		entry.NewEnum(store, "box linestyle", "boxplot.boxprops.linestyle", 0, propLineStyles),
		entry.NewSeparator("Whisker Properties"),
		entry.NewColor(store, "whisker color", "boxplot.whiskerprops.color"),
		entry.NewFloat(store, "whisker line width", "boxplot.whiskerprops.linewidth", 1.0, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
		entry.NewEnum(store, "whisker linestyle", "boxplot.whiskerprops.linestyle", 0, propLineStyles),
		entry.NewSeparator("Cap Properties"),
		entry.NewColor(store, "cap color", "boxplot.capprops.color"),
		entry.NewFloat(store, "cap line width", "boxplot.capprops.linewidth", 1.0, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
		entry.NewEnum(store, "cap linestyle", "boxplot.capprops.linestyle", 0, propLineStyles),
		entry.NewSeparator("Median Properties"),
		entry.NewColor(store, "median color", "boxplot.medianprops.color"),
		entry.NewFloat(store, "median line width", "boxplot.medianprops.linewidth", 1.0, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
		entry.NewEnum(store, "median linestyle", "boxplot.medianprops.linestyle", 0, propLineStyles),
		entry.NewSeparator("Mean Properties"),
		entry.NewColor(store, "mean color", "boxplot.meanprops.color"),
		entry.NewFloat(store, "mean line width", "boxplot.meanprops.linewidth", 1.0, entry.Between(0.0, 5.0), 0.1, 0.5, "%.3f"),
		entry.NewEnum(store, "mean linestyle", "boxplot.meanprops.linestyle", 0, propLineStyles),
		entry.NewEnum(store, "mean marker", "boxplot.meanprops.marker", 0, propMarkers),
		entry.NewColor(store, "mean markerfacecolor", "boxplot.meanprops.markerfacecolor"),
		entry.NewColor(store, "mean markeredgecolor", "boxplot.meanprops.markeredgecolor"),
		entry.NewFloat(store, "mean markersize", "boxplot.meanprops.markersize", 6.0, entry.Between(0.0, 20.0), 0.1, 0.5, "%.3f"),
	)
}

// Image returns the section for image parameters.
func Image(store rcparams.Store) *Section {
	return NewSection("Image",
		entry.NewEnum(store, "aspect", "image.aspect", 1, []string{"auto", "equal"}),
		entry.NewEnum(store, "interpolation", "image.interpolation", 0, []string{"none", "nearest", "bilinear", "bicubic", "spline16", "spline36", "hanning", "hamming", "hermite", "kaiser", "quadric", "catrom", "gaussian", "bessel", "mitchell", "sinc"}),
		entry.NewEnum(store, "colormap", "image.cmap", 0, []string{"viridis", "hot", "cool", "coolwarm", "binary", "plasma", "inferno", "magma", "cividis", "jet", "rainbow"}),
		entry.NewInt(store, "lut", "image.lut", 256, entry.Between(0, 256), 1, 10),
		entry.NewEnum(store, "origin", "image.origin", 0, []string{"upper", "lower"}),
		entry.NewBool(store, "resample", "image.resample", true),
		entry.NewBool(store, "composite", "image.composite_image", true, entry.OnSameLine),
	)
}
