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

package gui

// FeatureReq is used to request an action from the GUI from outside of the
// GUI thread. eg. applying a named style given on the command line.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. argument must be of the type specified or
// else the interface{} type conversion will fail.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// reset the store to the default state and then apply the named style.
	// the empty string or "default" resets to the default state only
	ReqApplyStyle FeatureReq = "ReqApplyStyle" // string

	// export the style file to the path given by the preferences
	ReqExport FeatureReq = "ReqExport" // none

	// end the GUI service loop. preferences are saved
	ReqQuit FeatureReq = "ReqQuit" // none
)
