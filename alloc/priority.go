package alloc

// newPriorityTable builds the per-input dimensional priority vector from
// spec.md section 4.8, ported from dor_allocator.cpp's
// _InitializePriorityMapping: lower number means higher priority.
//
//	3D, 4 inputs (0=X,1=Y,2=Z,3=PE):            X=2 Y=1 Z=0 PE=3
//	3D, 7 inputs (0=E,1=W,2=S,3=N,4=Up,5=Down,6=PE): E=W=2 S=N=1 Up=Down=0 PE=3
//	2D, 3 inputs (0=X,1=Y,2=PE):                 X=1 Y=0 PE=2
//	otherwise: reverse port-index order for network ports, PE (last port) lowest
func newPriorityTable(numInputs int) []int {
	switch numInputs {
	case 4:
		return []int{2, 1, 0, 3}
	case 7:
		return []int{2, 2, 1, 1, 0, 0, 3}
	case 3:
		return []int{1, 0, 2}
	default:
		p := make([]int, numInputs)
		if numInputs == 0 {
			return p
		}
		networkPorts := numInputs - 1
		for i := 0; i < networkPorts; i++ {
			p[i] = networkPorts - 1 - i
		}
		p[numInputs-1] = networkPorts
		return p
	}
}
