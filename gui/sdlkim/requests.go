// This file is part of GoKIM1.
//
// GoKIM1 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GoKIM1 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GoKIM1.  If not, see <https://www.gnu.org/licenses/>.

package sdlkim

import (
	"github.com/gokim1/gokim1/curated"
	"github.com/gokim1/gokim1/govern"
	"github.com/gokim1/gokim1/gui"
)

// SetFeature implements the gui.GUI interface.
//
// MUST ONLY be called from the #mainthread
func (scr *SdlKIM) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (rerr error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			rerr = curated.Errorf("sdlkim: %v", r)
		}
	}()

	switch request {
	case gui.ReqState:
		scr.setState(args[0].(govern.State))
	case gui.ReqSetVisibility:
		scr.showWindow(args[0].(bool))
	case gui.ReqSetScale:
		return scr.setScale(args[0].(float32))
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return nil
}
