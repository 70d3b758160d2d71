package domain

// StreamKind identifies a continuous data stream variant.
type StreamKind string

const (
	StreamGaze      StreamKind = "gaze"
	StreamEyeStates StreamKind = "eye_states"
	StreamIMU       StreamKind = "imu"
	StreamCustom    StreamKind = "custom"
)

// NominalRate returns the device-declared sampling frequency in Hz for the
// stream kind, or 0 when none applies (externally supplied data).
func (k StreamKind) NominalRate() float64 {
	switch k {
	case StreamGaze, StreamEyeStates:
		return 200
	case StreamIMU:
		return 110
	default:
		return 0
	}
}

// Schema returns the static column schema for the stream kind.
// Custom streams carry no schema; their shape is caller-defined.
func (k StreamKind) Schema() Schema {
	switch k {
	case StreamGaze:
		return gazeSchema
	case StreamEyeStates:
		return eyeStatesSchema
	case StreamIMU:
		return imuSchema
	default:
		return nil
	}
}

var gazeSchema = Schema{
	{Name: "gaze x [px]", Type: ColumnFloat64},
	{Name: "gaze y [px]", Type: ColumnFloat64},
	{Name: "worn", Type: ColumnBool},
	{Name: "fixation id", Type: ColumnNullableInt64},
	{Name: "blink id", Type: ColumnNullableInt64},
	{Name: "azimuth [deg]", Type: ColumnFloat64},
	{Name: "elevation [deg]", Type: ColumnFloat64},
}

var eyeStatesSchema = Schema{
	{Name: "pupil diameter left [mm]", Type: ColumnFloat64},
	{Name: "pupil diameter right [mm]", Type: ColumnFloat64},
	{Name: "eyeball center left x [mm]", Type: ColumnFloat64},
	{Name: "eyeball center left y [mm]", Type: ColumnFloat64},
	{Name: "eyeball center left z [mm]", Type: ColumnFloat64},
	{Name: "eyeball center right x [mm]", Type: ColumnFloat64},
	{Name: "eyeball center right y [mm]", Type: ColumnFloat64},
	{Name: "eyeball center right z [mm]", Type: ColumnFloat64},
	{Name: "optical axis left x", Type: ColumnFloat64},
	{Name: "optical axis left y", Type: ColumnFloat64},
	{Name: "optical axis left z", Type: ColumnFloat64},
	{Name: "optical axis right x", Type: ColumnFloat64},
	{Name: "optical axis right y", Type: ColumnFloat64},
	{Name: "optical axis right z", Type: ColumnFloat64},
}

var imuSchema = Schema{
	{Name: "gyro x [deg/s]", Type: ColumnFloat64},
	{Name: "gyro y [deg/s]", Type: ColumnFloat64},
	{Name: "gyro z [deg/s]", Type: ColumnFloat64},
	{Name: "acceleration x [g]", Type: ColumnFloat64},
	{Name: "acceleration y [g]", Type: ColumnFloat64},
	{Name: "acceleration z [g]", Type: ColumnFloat64},
	{Name: "roll [deg]", Type: ColumnFloat64},
	{Name: "pitch [deg]", Type: ColumnFloat64},
	{Name: "yaw [deg]", Type: ColumnFloat64},
	{Name: "quaternion w", Type: ColumnFloat64},
	{Name: "quaternion x", Type: ColumnFloat64},
	{Name: "quaternion y", Type: ColumnFloat64},
	{Name: "quaternion z", Type: ColumnFloat64},
}
