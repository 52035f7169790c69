package entity

const UnknownInstanceValue = "unknown"

type InstanceMetadata struct {
	Region           string `json:"region"`
	AvailabilityZone string `json:"availability_zone"`
	InstanceID       string `json:"instance_id"`
	InstanceType     string `json:"instance_type"`
}

func UnknownInstance() InstanceMetadata {
	return InstanceMetadata{
		Region:           UnknownInstanceValue,
		AvailabilityZone: UnknownInstanceValue,
		InstanceID:       UnknownInstanceValue,
		InstanceType:     UnknownInstanceValue,
	}
}
