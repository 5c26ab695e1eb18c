package devices

type NoneDetectedError struct{}

func (e *NoneDetectedError) Error() string {
	return "no external disk detected"
}
